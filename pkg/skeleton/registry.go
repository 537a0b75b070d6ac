package skeleton

import (
	"iter"
	"math"
)

// splitEntry remembers one side of a split point on an original edge. The
// left entry ends the lower piece, the right entry starts the upper one.
type splitEntry struct {
	node       nodeID
	projection float64
	left       bool
	serial     int
}

func compareSplitEntries(a, b splitEntry) int {
	if a.serial == b.serial {
		switch {
		case a.left == b.left:
			return 0
		case a.left:
			return -1
		default:
			return 1
		}
	}
	switch {
	case a.projection < b.projection:
		return -1
	case a.projection > b.projection:
		return 1
	case a.serial < b.serial:
		return -1
	default:
		return 1
	}
}

// registry tracks, per original edge, where split events cut it.
type registry struct {
	edges   []Segment
	initial []nodeID
	trees   []*rbt[splitEntry]
	serial  int
}

func newRegistry(edges []Segment, initial []nodeID) *registry {
	r := &registry{
		edges:   edges,
		initial: initial,
		trees:   make([]*rbt[splitEntry], len(edges)),
	}
	for i := range r.trees {
		r.trees[i] = newRBT(compareSplitEntries)
	}
	return r
}

// add records a split of edge at point: left ends the piece below the
// point, right starts the piece above it.
func (r *registry) add(edge int, left, right nodeID, point Point) {
	p := r.edges[edge].projection(point)
	r.serial++
	r.trees[edge].insert(splitEntry{node: left, projection: p, left: true, serial: r.serial})
	r.trees[edge].insert(splitEntry{node: right, projection: p, left: false, serial: r.serial})
}

func (r *registry) len(edge int) int { return r.trees[edge].len() }

// candidates yields the nodes that started pieces of edge, nearest to
// point first: entries at or below the projection going down, then the
// edge's initial node, then entries above going up. Nothing past the
// caller's first hit is visited.
func (r *registry) candidates(edge int, point Point) iter.Seq[nodeID] {
	return func(yield func(nodeID) bool) {
		tree := r.trees[edge]
		key := splitEntry{projection: r.edges[edge].projection(point), serial: math.MaxInt}

		for n := tree.floor(key); n != nil; n = n.previous {
			if !n.value.left && !yield(n.value.node) {
				return
			}
		}
		if !yield(r.initial[edge]) {
			return
		}
		for n := tree.higher(key); n != nil; n = n.next {
			if !n.value.left && !yield(n.value.node) {
				return
			}
		}
	}
}
