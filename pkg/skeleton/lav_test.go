package skeleton

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleArena(t *testing.T) (*arena, []*node) {
	t.Helper()
	a := &arena{}
	nodes := []*node{
		a.add(Point{0, 0}, 2, 0, 0),
		a.add(Point{0, 10}, 0, 1, 0),
		a.add(Point{10, 0}, 1, 2, 0),
	}
	for i, n := range nodes {
		require.NoError(t, a.connectWithPrevious(n, nodes[(i+2)%3]))
	}
	return a, nodes
}

func TestLoop(t *testing.T) {
	a, nodes := triangleArena(t)

	var got []nodeID
	for n, err := range a.loop(nodes[1].id) {
		require.NoError(t, err)
		got = append(got, n.id)
	}
	assert.Equal(t, []nodeID{1, 2, 0}, got)

	size, err := a.loopSize(0)
	require.NoError(t, err)
	assert.Equal(t, 3, size)

	ok, err := a.sameLoop(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoopReportsBrokenLinks(t *testing.T) {
	a, nodes := triangleArena(t)
	nodes[2].next = nodes[1].id

	_, err := a.loopSize(0)
	require.Error(t, err)
	var violation *TopologyInvariantViolation
	assert.True(t, errors.As(err, &violation))

	nodes[2].next = noNode
	_, err = a.loopSize(0)
	assert.Error(t, err)
}

func TestConnectWithPrevious(t *testing.T) {
	a, nodes := triangleArena(t)

	err := a.connectWithPrevious(nodes[0], nodes[0])
	var violation *TopologyInvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "node linked to itself", violation.Reason)

	nodes[1].processed = true
	err = a.connectWithPrevious(nodes[2], nodes[1])
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "link to processed node", violation.Reason)
}
