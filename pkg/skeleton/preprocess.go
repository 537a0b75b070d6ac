package skeleton

import (
	"math"
	"slices"
)

// RemoveCollinearVertices drops vertices lying on the straight line through
// their neighbours. Pointy vertices, where the outline turns back on itself,
// stay. Consecutive duplicates are collapsed first. Inputs of two vertices or
// fewer are returned unchanged and at least one vertex always remains.
func RemoveCollinearVertices(points []Point) []Point {
	return removeCollinear(points, CollinearEpsilon)
}

func removeCollinear(points []Point, eps float64) []Point {
	if len(points) <= 2 {
		return slices.Clone(points)
	}
	out := dedupe(points)
	for {
		next := collinearPass(out, eps)
		if len(next) == len(out) {
			return next
		}
		out = next
	}
}

func dedupe(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// collinearPass removes every removable vertex once, judging each against
// the last kept vertex and its original successor.
func collinearPass(points []Point, eps float64) []Point {
	n := len(points)
	if n <= 2 {
		return points
	}
	kept := make([]Point, 0, n)
	removed := 0
	for i, p := range points {
		if n-removed <= 2 {
			kept = append(kept, points[i:]...)
			break
		}
		prev := points[(i+n-1)%n]
		if len(kept) > 0 {
			prev = kept[len(kept)-1]
		}
		next := points[(i+1)%n]
		if removable(prev, p, next, eps) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func removable(prev, p, next Point, eps float64) bool {
	if prev == next {
		return false
	}
	chord := Segment{Start: prev, End: next}
	if chord.DistanceToLine(p) >= eps {
		return false
	}
	in := p.Sub(prev).Normalize()
	out := next.Sub(p).Normalize()
	return in.Dot(out) >= 0
}

// SignedArea is the shoelace area with Y pointing up. Polygons the engine
// works with are counter-clockwise in a Y-down system, so their area is
// negative.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// normalizeOrientation returns points in the engine's orientation.
func normalizeOrientation(points []Point) []Point {
	out := slices.Clone(points)
	if SignedArea(out) > 0 {
		slices.Reverse(out)
	}
	return out
}

// bounds returns the bounding box and its larger side, or 1 when the box is
// empty.
func bounds(points []Point) (minX, minY, maxX, maxY, scale float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	scale = math.Max(maxX-minX, maxY-minY)
	if !(scale > 0) {
		scale = 1
	}
	return minX, minY, maxX, maxY, scale
}
