package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph(t *testing.T) {
	a, b, c, d := Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{5, 5}
	g := newGraph([]Segment{
		{Start: a, End: b},
		{Start: b, End: c},
		{Start: c, End: b}, // the same edge backwards
		{Start: c, End: c},
	})

	assert.Equal(t, []Point{a, b, c}, g.Vertices())
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []Segment{{Start: a, End: b}, {Start: b, End: c}}, g.Edges())
	assert.Equal(t, []Point{a, c}, g.Neighbors(b))
	assert.Equal(t, 2, g.Degree(b))
	assert.Equal(t, 1, g.Degree(c))
	assert.Zero(t, g.Degree(d))
	assert.Nil(t, g.Neighbors(d))
	assert.True(t, g.Connected())
	assert.True(t, g.isTree())
}

func TestGraphNotATree(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{1, 1}

	cycle := newGraph([]Segment{{Start: a, End: b}, {Start: b, End: c}, {Start: c, End: a}})
	assert.True(t, cycle.Connected())
	assert.False(t, cycle.isTree())

	apart := newGraph([]Segment{{Start: a, End: b}, {Start: c, End: Point{2, 2}}})
	assert.False(t, apart.Connected())
	assert.False(t, apart.isTree())

	assert.True(t, newGraph(nil).Connected())
}
