package skeleton

import (
	"context"

	"github.com/0x0FACED/go-skeleton/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stats counts what happened during one computation.
type Stats struct {
	Vertices    int
	Nodes       int
	EdgeEvents  int
	SplitEvents int
	StaleEvents int
	// Requeued counts split events whose edge piece had already gone; the
	// reflex vertex got a fresh event instead.
	Requeued int
	// Queued counts events put into the queue, Refreshed the nodes that got
	// a new event after their pending one went stale or a nearer one
	// appeared.
	Queued    int
	Refreshed int
	Steps     int
	// Arcs includes zero-length arcs, which are not stored.
	Arcs int
}

type arcRecord struct {
	seg       Segment
	startTime float64
	endTime   float64
	left      int
	right     int
}

// engine holds all mutable state of one computation.
type engine struct {
	cfg      Config
	log      *logger.ZapLogger
	tol      tolerances
	edges    []Segment
	nodes    arena
	queue    *rbt[event]
	reg      *registry
	snap     *snapper
	arcs     []arcRecord
	stats    Stats
	serial   int
	maxSteps int
	// now is the offset of the last event taken from the queue
	now float64
	// watchers holds, per edge, the reflex nodes whose split missed the
	// edge's piece
	watchers []map[nodeID]struct{}
}

func newEngine(points []Point, cfg Config, tol tolerances, log *logger.ZapLogger) *engine {
	n := len(points)
	e := &engine{
		cfg:      cfg,
		log:      log,
		tol:      tol,
		edges:    make([]Segment, n),
		watchers: make([]map[nodeID]struct{}, n),
		queue:    newRBT(eventOrder(tol.eps)),
		snap:     newSnapper(tol.snap),
		maxSteps: cfg.maxSteps(n),
	}
	for i, p := range points {
		e.edges[i] = Segment{Start: p, End: points[(i+1)%n]}
		e.snap.snap(p)
	}
	e.stats.Vertices = n
	return e
}

// init builds the initial loop and seeds the queue.
func (e *engine) init() error {
	n := len(e.edges)
	initial := make([]nodeID, n)
	for i := range e.edges {
		nd := e.nodes.add(e.edges[i].Start, (i+n-1)%n, i, 0)
		initial[i] = nd.id
	}
	for i := range initial {
		if err := e.nodes.connectWithPrevious(e.nodes.get(initial[i]), e.nodes.get(initial[(i+n-1)%n])); err != nil {
			return err
		}
	}
	for _, id := range initial {
		if err := e.computeBisector(e.nodes.get(id)); err != nil {
			return err
		}
	}
	e.reg = newRegistry(e.edges, initial)
	for _, id := range initial {
		if err := e.queueNearest(e.nodes.get(id)); err != nil {
			return err
		}
	}
	e.log.Debug("[sk] Очередь событий заполнена", zap.Int("events", e.queue.len()))
	return nil
}

func (e *engine) computeBisector(nd *node) error {
	prev, cur := e.edges[nd.previousEdge], e.edges[nd.currentEdge]
	nd.reflex = isReflex(prev, cur, e.tol.angle)
	nd.sliver = antiparallel(prev, cur, e.tol.angle)
	b, err := newBisector(prev, cur, nd.vertex, nd.reflex)
	if err != nil {
		return err
	}
	nd.bisector = b
	nd.speed = b.Direction.Dot(cur.inwardNormal())
	return nil
}

func (e *engine) run(ctx context.Context) error {
	for step := 0; ; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "skeleton computation interrupted")
			}
		}
		ev, ok := e.queue.popFirst()
		if !ok {
			break
		}
		if step >= e.maxSteps {
			return violation(ev.kind().String(), "step limit exceeded", ev.at())
		}
		e.stats.Steps++
		e.now = max(e.now, ev.dist())

		var err error
		switch ev := ev.(type) {
		case edgeEvent:
			err = e.handleEdge(ev)
		case splitEvent:
			err = e.handleSplit(ev)
		}
		if err != nil {
			return err
		}
	}
	return e.checkResidue()
}

// checkResidue runs after the queue drained: every node must be consumed.
func (e *engine) checkResidue() error {
	for _, nd := range e.nodes.nodes {
		if !nd.processed {
			return violation("", "wavefront node left after the last event", nd.vertex)
		}
	}
	return nil
}

func (e *engine) notify(info EventInfo) {
	if e.cfg.OnEvent != nil {
		e.cfg.OnEvent(info)
	}
}

func (e *engine) stale(info EventInfo) {
	e.stats.StaleEvents++
	info.Stale = true
	e.notify(info)
}

// emitArc records the path nd travelled from its creation to p.
func (e *engine) emitArc(nd *node, p Point, time float64) error {
	e.stats.Arcs++
	if nd.vertex == p {
		return nil
	}
	rec := arcRecord{
		seg:       Segment{Start: nd.vertex, End: p},
		startTime: nd.time,
		endTime:   time,
		left:      nd.previousEdge,
		right:     nd.currentEdge,
	}
	if e.cfg.DebugChecks {
		for _, other := range e.arcs {
			if IntersectSegments(rec.seg, other.seg, e.tol.eps) {
				return violation("", "arcs cross", rec.seg.Start, rec.seg.End, other.seg.Start, other.seg.End)
			}
		}
	}
	e.arcs = append(e.arcs, rec)
	return nil
}

func (e *engine) consume(nd *node, p Point, time float64, info *EventInfo) error {
	if nd.processed {
		return violation(info.Kind.String(), "processed node revisited", nd.vertex)
	}
	if err := e.emitArc(nd, p, time); err != nil {
		return err
	}
	nd.processed = true
	info.Consumed = append(info.Consumed, int(nd.id))
	return nil
}

func (e *engine) handleEdge(ev edgeEvent) error {
	va, vb := e.nodes.get(ev.va), e.nodes.get(ev.vb)
	info := EventInfo{Kind: EdgeEvent, Point: ev.point, Distance: ev.distance, Nodes: []int{int(va.id), int(vb.id)}}
	if va.processed || vb.processed || va.next != vb.id {
		e.stale(info)
		return nil
	}

	p := e.snap.snap(ev.point)
	e.stats.EdgeEvents++
	e.log.Debug("[sk-edge] Ребро схлопнулось",
		zap.Any("point", p), zap.Float64("distance", ev.distance),
		zap.Int("va", int(va.id)), zap.Int("vb", int(vb.id)))

	third := e.nodes.get(vb.next)
	if third.next == va.id {
		// треугольник схлопывается в точку
		for _, nd := range []*node{va, vb, third} {
			if err := e.consume(nd, p, ev.distance, &info); err != nil {
				return err
			}
		}
		e.notify(info)
		return nil
	}
	if vb.next == va.id {
		for _, nd := range []*node{va, vb} {
			if err := e.consume(nd, p, ev.distance, &info); err != nil {
				return err
			}
		}
		e.notify(info)
		return nil
	}

	for _, nd := range []*node{va, vb} {
		if err := e.consume(nd, p, ev.distance, &info); err != nil {
			return err
		}
	}
	prev, next := e.nodes.get(va.previous), e.nodes.get(vb.next)

	merged := e.nodes.add(p, va.previousEdge, vb.currentEdge, ev.distance)
	if err := e.nodes.connectWithPrevious(merged, prev); err != nil {
		return err
	}
	if err := e.nodes.connectWithPrevious(next, merged); err != nil {
		return err
	}
	if err := e.computeBisector(merged); err != nil {
		return err
	}
	va.startMovedTo = noNode
	vb.startMovedTo = merged.id
	e.notify(info)

	if err := e.queueNearest(merged); err != nil {
		return err
	}
	for _, nd := range []*node{prev, next} {
		if err := e.refresh(nd); err != nil {
			return err
		}
	}
	return e.wake(merged)
}

func (e *engine) handleSplit(ev splitEvent) error {
	v := e.nodes.get(ev.va)
	info := EventInfo{Kind: SplitEvent, Point: ev.point, Distance: ev.distance, Nodes: []int{int(v.id)}}
	if v.processed {
		e.stale(info)
		return nil
	}

	b := e.snap.snap(ev.point)
	x, err := e.locatePiece(v, ev.opposite, b)
	if err != nil {
		return err
	}
	if x == nil {
		// кусок ребра уже исчез, пересчитываем событие вершины
		e.stats.Requeued++
		e.log.Debug("[sk-split] Кусок ребра не найден, событие пересчитано",
			zap.Any("point", b), zap.Int("edge", ev.opposite))
		e.stale(info)
		return e.queueNearest(v)
	}

	e.stats.SplitEvents++
	e.log.Debug("[sk-split] Рефлексная вершина разбила ребро",
		zap.Any("point", b), zap.Float64("distance", ev.distance),
		zap.Int("node", int(v.id)), zap.Int("edge", ev.opposite))

	if err := e.consume(v, b, ev.distance, &info); err != nil {
		return err
	}
	prev, next := e.nodes.get(v.previous), e.nodes.get(v.next)
	xNext := e.nodes.get(x.next)

	node1 := e.nodes.add(b, v.previousEdge, ev.opposite, ev.distance)
	node2 := e.nodes.add(b, ev.opposite, v.currentEdge, ev.distance)
	links := [][2]*node{{node1, prev}, {xNext, node1}, {node2, x}, {next, node2}}
	for _, l := range links {
		if err := e.nodes.connectWithPrevious(l[0], l[1]); err != nil {
			return err
		}
	}
	v.startMovedTo = node2.id
	e.reg.add(ev.opposite, node2.id, node1.id, b)

	var fresh []*node
	for _, nd := range []*node{node1, node2} {
		size, err := e.nodes.loopSize(nd.id)
		if err != nil {
			return err
		}
		if size == 2 {
			// петля из двух вершин закрывается сразу
			for _, m := range []*node{nd, e.nodes.get(nd.next)} {
				if err := e.consume(m, b, ev.distance, &info); err != nil {
					return err
				}
			}
			continue
		}
		if err := e.computeBisector(nd); err != nil {
			return err
		}
		fresh = append(fresh, nd)
	}
	e.notify(info)

	for _, nd := range fresh {
		if err := e.queueNearest(nd); err != nil {
			return err
		}
	}
	for _, nd := range []*node{prev, next, x, xNext} {
		if err := e.refresh(nd); err != nil {
			return err
		}
	}
	for _, nd := range fresh {
		if err := e.wake(nd); err != nil {
			return err
		}
	}
	return nil
}

// locatePiece finds the live node whose current edge piece on edge contains
// point. It asks the registry first and falls back to walking v's loop.
func (e *engine) locatePiece(v *node, edge int, point Point) (*node, error) {
	for c := range e.reg.candidates(edge, point) {
		head := e.liveHead(c)
		if head == nil {
			continue
		}
		ok, err := e.isPieceFor(v, head, edge, point)
		if err != nil {
			return nil, err
		}
		if ok {
			return head, nil
		}
	}
	for x, err := range e.nodes.loop(v.id) {
		if err != nil {
			return nil, err
		}
		ok, err := e.isPieceFor(v, x, edge, point)
		if err != nil {
			return nil, err
		}
		if ok {
			e.log.Warn("[sk-split] Реестр не нашел кусок ребра, найден обходом", zap.Int("edge", edge))
			return x, nil
		}
	}
	return nil, nil
}

// liveHead follows startMovedTo from a consumed node to the node that now
// starts its piece.
func (e *engine) liveHead(id nodeID) *node {
	nd := e.nodes.get(id)
	for steps := 0; nd.processed; steps++ {
		if nd.startMovedTo == noNode || steps > e.nodes.len() {
			return nil
		}
		nd = e.nodes.get(nd.startMovedTo)
	}
	return nd
}

func (e *engine) isPieceFor(v, x *node, edge int, point Point) (bool, error) {
	if x.processed || x.currentEdge != edge || x.id == v.id || x.id == v.previous {
		return false, nil
	}
	if !e.pieceContains(x, point) {
		return false, nil
	}
	return e.nodes.sameLoop(v.id, x.id)
}

// pieceContains reports whether p lies between the bisectors of x and
// x.next, on the side of x's current edge.
func (e *engine) pieceContains(x *node, p Point) bool {
	xn := e.nodes.get(x.next)
	return x.bisector.Direction.Cross(p.Sub(x.vertex)) >= -e.tol.region &&
		xn.bisector.Direction.Cross(p.Sub(xn.vertex)) <= e.tol.region
}
