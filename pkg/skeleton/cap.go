package skeleton

import (
	"slices"
	"sort"
)

// Cap returns the wavefront at the given offset: the polygon shrunk by depth.
// Depth 0 gives the input polygon, negative depths give nil and depths past
// MaxDepth give an empty result. The shrunk outline may fall apart into
// several polygons.
func (s *Skeleton) Cap(depth float64) []Polygon {
	if depth < 0 {
		return nil
	}
	if depth == 0 {
		return []Polygon{slices.Clone(s.polygon)}
	}
	var segments []Segment
	for i, face := range s.faces {
		segments = append(segments, s.faceLevel(s.edges[i], face, depth)...)
	}
	return chainSegments(segments, s.snapTol)
}

func (s *Skeleton) timeAt(p Point) float64 {
	// вершины исходного многоугольника лежат на нулевом уровне
	return s.times[p]
}

// faceLevel cuts a face at the given offset. Each resulting segment runs
// along the direction of the face's edge.
func (s *Skeleton) faceLevel(edge Segment, face Polygon, depth float64) []Segment {
	var crossings []Point
	for k, a := range face {
		b := face[(k+1)%len(face)]
		ta, tb := s.timeAt(a), s.timeAt(b)
		if (ta < depth) == (tb < depth) {
			continue
		}
		crossings = append(crossings, levelPoint(a, ta, b, tb, depth))
	}

	dir := edge.Vector()
	sort.Slice(crossings, func(i, j int) bool {
		return crossings[i].Sub(edge.Start).Dot(dir) < crossings[j].Sub(edge.Start).Dot(dir)
	})

	var out []Segment
	for k := 0; k+1 < len(crossings); k += 2 {
		seg := Segment{Start: crossings[k], End: crossings[k+1]}
		if seg.Start != seg.End {
			out = append(out, seg)
		}
	}
	return out
}

// levelPoint interpolates the point at depth on the arc between a and b.
// Both faces sharing an arc get the same bits because the ends are ordered
// before interpolating.
func levelPoint(a Point, ta float64, b Point, tb float64, depth float64) Point {
	if b.less(a) {
		a, b, ta, tb = b, a, tb, ta
	}
	switch depth {
	case ta:
		return a
	case tb:
		return b
	}
	f := (depth - ta) / (tb - ta)
	return a.Add(b.Sub(a).Mul(f))
}

// chainSegments joins segments end to start into closed rings. Ends are
// matched exactly first and within tol otherwise.
func chainSegments(segments []Segment, tol float64) []Polygon {
	starts := make(map[Point][]int, len(segments))
	for i, s := range segments {
		starts[s.Start] = append(starts[s.Start], i)
	}
	used := make([]bool, len(segments))

	findNext := func(p Point) int {
		for _, i := range starts[p] {
			if !used[i] {
				return i
			}
		}
		best, bestDist := -1, tol
		for i, s := range segments {
			if used[i] {
				continue
			}
			if d := s.Start.DistanceTo(p); d <= bestDist {
				best, bestDist = i, d
			}
		}
		return best
	}

	var out []Polygon
	for i := range segments {
		if used[i] {
			continue
		}
		first := segments[i].Start
		var ring Polygon
		for cur := i; cur >= 0; {
			used[cur] = true
			ring = append(ring, segments[cur].Start)
			end := segments[cur].End
			if end == first || end.DistanceTo(first) <= tol {
				break
			}
			cur = findNext(end)
		}
		if len(ring) >= 3 {
			out = append(out, ring)
		}
	}
	return out
}
