package skeleton

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Polygon is a closed ring of points. The last point connects back to the
// first one and is not repeated.
type Polygon []Point

// Skeleton is the straight skeleton of one simple polygon.
type Skeleton struct {
	polygon Polygon
	edges   []Segment
	arcs    []arcRecord
	times   map[Point]float64
	graph   *Graph
	faces   []Polygon
	stats   Stats
	snapTol float64
}

// New computes the skeleton of points. The orientation of the input does
// not matter unless cfg.TrustCounterClockwise is set.
func New(points []Point, cfg Config) (*Skeleton, error) {
	return ComputeContext(context.Background(), points, cfg)
}

// FromClockwiseCycle computes the skeleton of a cycle known to be clockwise
// in a Y-down system. The orientation test is skipped.
func FromClockwiseCycle(points []Point, cfg Config) (*Skeleton, error) {
	reversed := slices.Clone(points)
	slices.Reverse(reversed)
	cfg.TrustCounterClockwise = true
	return ComputeContext(context.Background(), reversed, cfg)
}

// ComputeContext is New with cancellation. The context is checked every 64
// events.
func ComputeContext(ctx context.Context, points []Point, cfg Config) (*Skeleton, error) {
	log := cfg.logger()
	started := time.Now()

	log.Info("[sk] Построение скелета запущено", zap.Int("vertices", len(points)))

	if problems := checkFinite(points); problems != nil {
		err := &InvalidInputError{Problems: problems}
		log.Error("[sk] Некорректный многоугольник", zap.Error(err))
		return nil, errors.WithStack(err)
	}

	pts := removeCollinear(points, orDefault(cfg.CollinearEpsilon, CollinearEpsilon))
	if !cfg.TrustCounterClockwise {
		pts = normalizeOrientation(pts)
	}
	_, _, _, _, scale := bounds(pts)
	tol := cfg.tolerances(scale)

	if problems := validatePolygon(pts, tol.eps, scale); problems != nil {
		err := &InvalidInputError{Problems: problems}
		log.Error("[sk] Некорректный многоугольник", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	log.Debug("[sk] Многоугольник подготовлен", zap.Int("vertices", len(pts)), zap.Float64("scale", scale))

	e := newEngine(pts, cfg, tol, log)
	if err := e.init(); err != nil {
		log.Error("[sk] Ошибка инициализации фронта", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	if err := e.run(ctx); err != nil {
		log.Error("[sk] Алгоритм прерван", zap.Error(err), zap.Int("steps", e.stats.Steps))
		return nil, errors.WithStack(err)
	}

	s := &Skeleton{
		polygon: Polygon(pts),
		edges:   e.edges,
		arcs:    e.arcs,
		stats:   e.stats,
		snapTol: tol.snap,
	}
	s.stats.Nodes = e.nodes.len()
	s.times = arcTimes(s.arcs)
	s.graph = newGraph(s.Arcs())

	faces, err := buildFaces(s.edges, s.arcs)
	if err != nil {
		log.Error("[sk] Грани не собраны", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	s.faces = faces

	if err := s.verify(tol); err != nil {
		log.Error("[sk] Скелет не прошел проверку", zap.Error(err), zap.Int("steps", e.stats.Steps))
		return nil, errors.WithStack(err)
	}

	log.Info("[sk] Алгоритм завершен!",
		zap.Int("arcs", len(s.arcs)),
		zap.Int("edge_events", s.stats.EdgeEvents),
		zap.Int("split_events", s.stats.SplitEvents),
		zap.Int("stale_events", s.stats.StaleEvents),
		zap.Duration("took", time.Since(started)))

	return s, nil
}

// Graph returns the arcs as an undirected graph.
func (s *Skeleton) Graph() *Graph { return s.graph }

// Arcs returns the skeleton arcs in the order they were traced.
func (s *Skeleton) Arcs() []Segment {
	out := make([]Segment, len(s.arcs))
	for i, a := range s.arcs {
		out[i] = a.seg
	}
	return out
}

// OriginalEdges returns the edges of the preprocessed input polygon.
func (s *Skeleton) OriginalEdges() []Segment { return slices.Clone(s.edges) }

// Polygon returns the preprocessed input polygon, counter-clockwise in a
// Y-down system.
func (s *Skeleton) Polygon() Polygon { return slices.Clone(s.polygon) }

// Faces returns one polygon per original edge: the area that edge sweeps
// while the polygon shrinks. Faces()[i] belongs to OriginalEdges()[i].
func (s *Skeleton) Faces() []Polygon {
	out := make([]Polygon, len(s.faces))
	for i, f := range s.faces {
		out[i] = slices.Clone(f)
	}
	return out
}

func (s *Skeleton) Stats() Stats { return s.stats }

// MaxDepth returns the offset at which the last part of the polygon
// vanishes.
func (s *Skeleton) MaxDepth() float64 {
	var m float64
	for _, a := range s.arcs {
		m = max(m, a.endTime)
	}
	return m
}

// arcTimes maps every arc end to the offset at which the wavefront passed
// it. The first value recorded for a point wins.
func arcTimes(arcs []arcRecord) map[Point]float64 {
	times := make(map[Point]float64, 2*len(arcs))
	for _, a := range arcs {
		if _, ok := times[a.seg.Start]; !ok {
			times[a.seg.Start] = a.startTime
		}
		if _, ok := times[a.seg.End]; !ok {
			times[a.seg.End] = a.endTime
		}
	}
	return times
}
