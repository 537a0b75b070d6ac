package skeleton

import (
	"maps"
	"math"
	"slices"
)

// queueNearest puts nd's nearest event, if it has one, into the queue and
// remembers it as nd's pending event.
func (e *engine) queueNearest(nd *node) error {
	ev, err := e.nearestEvent(nd)
	if err != nil {
		return err
	}
	e.enqueue(nd, ev)
	return nil
}

func (e *engine) enqueue(nd *node, ev event) {
	nd.pending = ev
	if ev == nil {
		return
	}
	e.stats.Queued++
	e.queue.insert(ev)
}

// refresh requeues a node whose surroundings changed. The pending event is
// kept while it can still happen and nothing nearer turned up.
func (e *engine) refresh(nd *node) error {
	if nd.processed {
		return nil
	}
	ev, err := e.nearestEvent(nd)
	if err != nil {
		return err
	}
	if e.stillPending(nd.pending) && (ev == nil || ev.dist() >= nd.pending.dist()-e.tol.eps) {
		return nil
	}
	e.stats.Refreshed++
	e.enqueue(nd, ev)
	return nil
}

// watch remembers that v hit the line of edge outside its current piece.
func (e *engine) watch(edge int, v nodeID) {
	if e.watchers[edge] == nil {
		e.watchers[edge] = make(map[nodeID]struct{})
	}
	e.watchers[edge][v] = struct{}{}
}

// wake refreshes the nodes watching the edges of nd: nd bounds new pieces
// of both, and a split that missed the old piece may land in the new one.
func (e *engine) wake(nd *node) error {
	for _, edge := range []int{nd.previousEdge, nd.currentEdge} {
		ws := e.watchers[edge]
		e.watchers[edge] = nil
		for _, id := range slices.Sorted(maps.Keys(ws)) {
			if err := e.refresh(e.nodes.get(id)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *engine) stillPending(ev event) bool {
	switch ev := ev.(type) {
	case edgeEvent:
		va, vb := e.nodes.get(ev.va), e.nodes.get(ev.vb)
		return !va.processed && !vb.processed && va.next == vb.id
	case splitEvent:
		return !e.nodes.get(ev.va).processed
	default:
		return false
	}
}

// nearestEvent returns the closest of: the edge event with the previous
// node, the edge event with the next node and, for reflex nodes, the
// nearest split. A split only wins when it is strictly nearer.
func (e *engine) nearestEvent(nd *node) (event, error) {
	var best event
	consider := func(ev event) {
		if best == nil || ev.dist() < best.dist()-e.tol.eps {
			best = ev
		}
	}

	if ev, ok := e.edgeEventBetween(e.nodes.get(nd.previous), nd); ok {
		consider(ev)
	}
	if ev, ok := e.edgeEventBetween(nd, e.nodes.get(nd.next)); ok {
		consider(ev)
	}
	if nd.reflex {
		ev, ok, err := e.findSplitEvent(nd)
		if err != nil {
			return nil, err
		}
		if ok {
			consider(ev)
		}
	}
	return best, nil
}

func (e *engine) nextSerial() int {
	e.serial++
	return e.serial
}

// edgeEventBetween meets the bisectors of va and vb = va.next.
func (e *engine) edgeEventBetween(va, vb *node) (event, bool) {
	if va.id == vb.id {
		return nil, false
	}
	if va.sliver || vb.sliver {
		return e.sliverEvent(va, vb)
	}
	p, ok := e.raysMeet(va, vb)
	if !ok {
		return nil, false
	}
	d := e.edges[va.currentEdge].DistanceToLine(p)
	return edgeEvent{
		eventBase: eventBase{point: p, distance: d, serial: e.nextSerial()},
		va:        va.id,
		vb:        vb.id,
	}, true
}

// sliverEvent closes the zero-width strip behind a sliver node. The strip
// ends at whichever neighbour is nearer, so the sliver meets that one right
// away and never the other.
func (e *engine) sliverEvent(va, vb *node) (event, bool) {
	for _, pair := range [][2]*node{{va, vb}, {vb, va}} {
		s, other := pair[0], pair[1]
		if !s.sliver {
			continue
		}
		partner, p := e.sliverPartner(s)
		if partner.id != other.id {
			continue
		}
		return edgeEvent{
			eventBase: eventBase{point: p, distance: s.time, serial: e.nextSerial()},
			va:        va.id,
			vb:        vb.id,
		}, true
	}
	return nil, false
}

// sliverPartner returns the neighbour of nd nearer to it at the moment nd
// was created, and where that neighbour was then. Ties go to the next one.
func (e *engine) sliverPartner(nd *node) (*node, Point) {
	prev, next := e.nodes.get(nd.previous), e.nodes.get(nd.next)
	pp, pn := e.positionAt(prev, nd.time), e.positionAt(next, nd.time)
	if pp.DistanceTo(nd.vertex) < pn.DistanceTo(nd.vertex) {
		return prev, pp
	}
	return next, pn
}

// positionAt returns where nd is at offset t. Slivers do not move.
func (e *engine) positionAt(nd *node, t float64) Point {
	if nd.sliver {
		return nd.vertex
	}
	return nd.bisector.At((t - nd.time) / nd.speed)
}

// raysMeet intersects the forward bisectors of two nodes. Parallel rays meet
// only when one node already sits on the other's ray; then the event happens
// at the younger node.
func (e *engine) raysMeet(va, vb *node) (Point, bool) {
	a, b := va.bisector, vb.bisector
	if x, ok := intersectLines(a, b, e.tol.angle); ok {
		if x.R < -e.tol.eps || x.S < -e.tol.eps {
			return Point{}, false
		}
		return x.Point, true
	}
	younger, older := vb, va
	if va.time > vb.time {
		younger, older = va, vb
	}
	if e.onRay(older.bisector, younger.vertex) {
		return younger.vertex, true
	}
	if e.onRay(younger.bisector, older.vertex) && equalWithEpsilon(va.time, vb.time, e.tol.eps) {
		return older.vertex, true
	}
	return Point{}, false
}

func (e *engine) onRay(r Ray, p Point) bool {
	d := p.Sub(r.Origin)
	return math.Abs(r.Direction.Cross(d)) <= e.tol.region && r.Direction.Dot(d) >= -e.tol.eps
}

// findSplitEvent looks for the point where the reflex node v reaches the
// wavefront of an edge of its own loop. Points already behind the
// wavefront are skipped.
func (e *engine) findSplitEvent(v *node) (event, bool, error) {
	origin := v.vertex
	dir := v.bisector.Direction
	prevEdge := e.edges[v.previousEdge]
	d0 := prevEdge.signedDistance(origin)
	speed := dir.Dot(prevEdge.inwardNormal())

	var best *splitEvent
	for x, err := range e.nodes.loop(v.id) {
		if err != nil {
			return nil, false, err
		}
		if x.id == v.id || x.id == v.previous ||
			x.currentEdge == v.previousEdge || x.currentEdge == v.currentEdge {
			continue
		}
		edge := e.edges[x.currentEdge]
		denom := speed - dir.Dot(edge.inwardNormal())
		if denom <= e.tol.angle {
			continue
		}
		t := (edge.signedDistance(origin) - d0) / denom
		if t <= e.tol.eps {
			continue
		}
		p := origin.Add(dir.Mul(t))
		d := d0 + t*speed
		if d < e.now-e.tol.eps {
			continue
		}
		if !e.pieceContains(x, p) {
			e.watch(x.currentEdge, v.id)
			continue
		}
		if best == nil || d < best.distance {
			best = &splitEvent{
				eventBase: eventBase{point: p, distance: d},
				va:        v.id,
				opposite:  x.currentEdge,
			}
		}
	}
	if best == nil {
		return nil, false, nil
	}
	best.serial = e.nextSerial()
	return *best, true, nil
}
