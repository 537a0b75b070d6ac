package skeleton

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisector(t *testing.T) {
	seg := func(x1, y1, x2, y2 float64) Segment {
		return Segment{Start: Point{x1, y1}, End: Point{x2, y2}}
	}
	s := math.Sqrt2 / 2

	tests := []struct {
		name       string
		prev, cur  Segment
		wantReflex bool
		want       Vector
	}{
		// clockwise square with Y up: interior on the right
		{"convex corner", seg(0, 0, 0, 10), seg(0, 10, 10, 10), false, Vector{s, -s}},
		{"reflex corner", seg(5, 10, 5, 5), seg(5, 5, 10, 5), true, Vector{-s, -s}},
		{"straight", seg(0, 0, 5, 0), seg(5, 0, 10, 0), false, Vector{0, -1}},
		{"antiparallel", seg(10, 0, 0, 0), seg(0, 10, 10, 10), false, Vector{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflex := isReflex(tt.prev, tt.cur, Epsilon)
			assert.Equal(t, tt.wantReflex, reflex)

			ray, err := newBisector(tt.prev, tt.cur, tt.prev.End, reflex)
			require.NoError(t, err)
			assert.Equal(t, tt.prev.End, ray.Origin)
			assert.InDelta(t, tt.want.X, ray.Direction.X, 1e-12)
			assert.InDelta(t, tt.want.Y, ray.Direction.Y, 1e-12)
			assert.InDelta(t, 1, ray.Direction.Magnitude(), 1e-12)
		})
	}
}

func TestBisectorZeroLengthEdge(t *testing.T) {
	p := Point{1, 1}
	_, err := newBisector(Segment{Start: p, End: p}, Segment{Start: p, End: Point{2, 1}}, p, false)
	require.Error(t, err)

	var degenerate *DegenerateGeometryError
	require.True(t, errors.As(err, &degenerate))
	assert.Contains(t, degenerate.Points, p)
}
