package skeleton

import (
	"iter"
)

// connectWithPrevious links previous -> n.
func (a *arena) connectWithPrevious(n, previous *node) error {
	if n.id == previous.id {
		return violation("", "node linked to itself", n.vertex)
	}
	if n.processed || previous.processed {
		return violation("", "link to processed node", n.vertex, previous.vertex)
	}
	n.previous = previous.id
	previous.next = n.id
	return nil
}

// loop walks the wavefront loop containing start by next links. A walk that
// does not come back within 10x the arena size yields a violation and stops.
func (a *arena) loop(start nodeID) iter.Seq2[*node, error] {
	return func(yield func(*node, error) bool) {
		limit := 10 * a.len()
		id := start
		for steps := 0; ; steps++ {
			if steps > limit || id == noNode {
				yield(nil, violation("", "wavefront loop is not closed", a.get(start).vertex))
				return
			}
			n := a.get(id)
			if !yield(n, nil) {
				return
			}
			id = n.next
			if id == start {
				return
			}
		}
	}
}

// loopSize counts the nodes of start's loop.
func (a *arena) loopSize(start nodeID) (int, error) {
	size := 0
	for _, err := range a.loop(start) {
		if err != nil {
			return 0, err
		}
		size++
	}
	return size, nil
}

// sameLoop reports whether to can be reached from from by next links.
func (a *arena) sameLoop(from, to nodeID) (bool, error) {
	for n, err := range a.loop(from) {
		if err != nil {
			return false, err
		}
		if n.id == to {
			return true, nil
		}
	}
	return false, nil
}
