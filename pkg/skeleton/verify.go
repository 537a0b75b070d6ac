package skeleton

import (
	"fmt"
	"math"
)

// AreaTolerance is the largest relative gap allowed between the polygon
// area and the summed area of its faces.
const AreaTolerance = 1e-6

// verify runs on every finished skeleton. The arcs must form a tree, every
// arc end must lie in the polygon and the faces must tile the polygon. A
// failure means an event was resolved wrongly, never bad input.
func (s *Skeleton) verify(tol tolerances) error {
	if !s.graph.isTree() {
		return violation("", fmt.Sprintf("arcs do not form a tree: %d vertices, %d edges",
			s.graph.NumVertices(), s.graph.NumEdges()))
	}
	for _, p := range s.graph.Vertices() {
		if !s.polygon.covers(p, tol.region) {
			return violation("", "arc end outside the polygon", p)
		}
	}

	var total float64
	for _, f := range s.faces {
		total += math.Abs(SignedArea(f))
	}
	area := math.Abs(SignedArea(s.polygon))
	if math.Abs(total-area) > AreaTolerance*area {
		return violation("", fmt.Sprintf("faces cover %g of area %g", total, area))
	}
	return nil
}

// covers reports whether p lies inside the polygon or within tol of its
// outline.
func (pg Polygon) covers(p Point, tol float64) bool {
	inside := false
	for i, a := range pg {
		b := pg[(i+1)%len(pg)]
		if (Segment{Start: a, End: b}).distanceTo(p) <= tol {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
