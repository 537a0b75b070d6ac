package skeleton

import (
	"math"
)

// isReflex reports whether the turn from previousEdge into currentEdge bends
// away from the interior (interior lies to the right of every edge).
func isReflex(previousEdge, currentEdge Segment, eps float64) bool {
	return previousEdge.Direction().Cross(currentEdge.Direction()) > eps
}

// newBisector returns the ray that bisects the inner angle between the two
// edges at vertex. The direction has unit length.
func newBisector(previousEdge, currentEdge Segment, vertex Point, reflex bool) (Ray, error) {
	if previousEdge.Start == previousEdge.End || currentEdge.Start == currentEdge.End {
		return Ray{}, degenerate("zero-length edge", vertex, previousEdge.Start, currentEdge.End)
	}

	in := previousEdge.Direction()
	out := currentEdge.Direction()
	sum := in.Neg().Add(out)

	var dir Vector
	if sum.isZero(Epsilon) {
		// продолжение по прямой
		dir = currentEdge.inwardNormal()
	} else {
		dir = sum.Normalize()
		if reflex {
			dir = dir.Neg()
		}
	}
	if !dir.isFinite() || dir.isZero(Epsilon) {
		return Ray{}, degenerate("undefined bisector", vertex)
	}
	return Ray{Origin: vertex, Direction: dir}, nil
}

// antiparallel reports whether the edges lie on parallel lines and run in
// opposite directions.
func antiparallel(previousEdge, currentEdge Segment, eps float64) bool {
	in, out := previousEdge.Direction(), currentEdge.Direction()
	return in.Dot(out) < 0 && math.Abs(in.Cross(out)) <= eps
}
