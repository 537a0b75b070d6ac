package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveCollinearVertices(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{
			name: "midpoints",
			in:   []Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 5}},
			want: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		},
		{
			name: "run of collinear points",
			in:   []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 3}},
			want: []Point{{0, 0}, {3, 0}, {3, 3}},
		},
		{
			name: "duplicates",
			in:   []Point{{0, 0}, {0, 0}, {4, 0}, {4, 4}, {4, 4}, {0, 0}},
			want: []Point{{0, 0}, {4, 0}, {4, 4}},
		},
		{
			name: "almost straight",
			in:   []Point{{0, 0}, {5, 1e-8}, {10, 0}, {5, 5}},
			want: []Point{{0, 0}, {10, 0}, {5, 5}},
		},
		{
			name: "pointy vertex stays",
			in:   []Point{{0, 0}, {10, 0}, {5, 0}},
			want: []Point{{0, 0}, {10, 0}},
		},
		{
			name: "two points",
			in:   []Point{{0, 0}, {0, 0}},
			want: []Point{{0, 0}, {0, 0}},
		},
		{
			name: "single point after dedupe",
			in:   []Point{{1, 1}, {1, 1}, {1, 1}},
			want: []Point{{1, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveCollinearVertices(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, RemoveCollinearVertices(got), "idempotent")
		})
	}
}

func TestRemoveCollinearIdempotentOnFixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		once := RemoveCollinearVertices(f.polygon())
		assert.Equal(t, once, RemoveCollinearVertices(once), f.Name)
	}
}

func TestNormalizeOrientation(t *testing.T) {
	ccw := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, 100.0, SignedArea(ccw))

	got := normalizeOrientation(ccw)
	assert.Equal(t, -100.0, SignedArea(got))
	assert.Equal(t, got, normalizeOrientation(got))
	assert.Equal(t, Point{0, 0}, ccw[0], "input untouched")
}
