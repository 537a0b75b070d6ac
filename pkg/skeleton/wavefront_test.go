package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, name string) *engine {
	t.Helper()
	pts := normalizeOrientation(fixtureByName(t, name))
	_, _, _, _, scale := bounds(pts)
	cfg := Config{}
	e := newEngine(pts, cfg, cfg.tolerances(scale), cfg.logger())
	require.NoError(t, e.init())
	return e
}

func TestRefreshKeepsLivePendingEvent(t *testing.T) {
	e := newTestEngine(t, "rectangle")
	nd := e.nodes.get(0)
	ev, ok := nd.pending.(edgeEvent)
	require.True(t, ok, "a rectangle corner starts with an edge event")
	queued := e.stats.Queued

	require.NoError(t, e.refresh(nd))
	assert.Equal(t, queued, e.stats.Queued, "pending event still holds")
	assert.Zero(t, e.stats.Refreshed)

	partner := ev.va
	if partner == nd.id {
		partner = ev.vb
	}
	e.nodes.get(partner).processed = true
	require.NoError(t, e.refresh(nd))
	assert.Equal(t, queued+1, e.stats.Queued)
	assert.Equal(t, 1, e.stats.Refreshed)
	assert.NotEqual(t, event(ev), nd.pending)
}

func TestRefreshSkipsConsumedNodes(t *testing.T) {
	e := newTestEngine(t, "square")
	nd := e.nodes.get(1)
	nd.processed = true
	nd.pending = nil
	queued := e.stats.Queued

	require.NoError(t, e.refresh(nd))
	assert.Equal(t, queued, e.stats.Queued)
	assert.Nil(t, nd.pending)
}

// Neighbours get a new event only when theirs changed, so the queue grows
// by one event per node plus the refreshed ones.
func TestQueueGrowsWithChanges(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			sk, err := New(f.polygon(), Config{})
			require.NoError(t, err)

			st := sk.Stats()
			assert.LessOrEqual(t, st.Queued, st.Nodes+st.Refreshed+st.Requeued)
			assert.Equal(t, st.Queued, st.Steps, "every queued event is taken out once")
		})
	}
}

func TestSliverNode(t *testing.T) {
	right := Segment{Start: Point{0, 0}, End: Point{10, 0}}
	left := Segment{Start: Point{10, 5}, End: Point{0, 5}}
	up := Segment{Start: Point{10, 0}, End: Point{10, 5}}

	assert.True(t, antiparallel(right, left, 1e-9))
	assert.True(t, antiparallel(left, right, 1e-9))
	assert.False(t, antiparallel(right, right, 1e-9))
	assert.False(t, antiparallel(right, up, 1e-9))

	e := newTestEngine(t, "square")
	nd := e.nodes.get(0)
	assert.False(t, nd.sliver)
	assert.Greater(t, nd.speed, 0.0)
	assert.Equal(t, nd.vertex, e.positionAt(nd, nd.time))

	nd.sliver = true
	assert.Equal(t, nd.vertex, e.positionAt(nd, nd.time+3), "slivers do not move")
}
