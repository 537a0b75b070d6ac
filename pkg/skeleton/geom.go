package skeleton

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerances used by the geometric predicates. Absolute tolerances are
// multiplied by the size of the input polygon's bounding box before use.
const (
	// Epsilon guards parallelism and zero-length checks.
	Epsilon = 1e-9
	// CollinearEpsilon is the largest distance from the chord between its
	// neighbours at which a vertex still counts as lying on a straight run.
	CollinearEpsilon = 1e-6
	// RegionEpsilon widens the area between an edge and its bisectors.
	RegionEpsilon = 1e-7
	// SnapEpsilon merges event points that differ only by rounding.
	SnapEpsilon = 1e-7
)

// Point is a position on the plane.
type Point struct {
	X float64
	Y float64
}

// Vector is a displacement on the plane.
type Vector struct {
	X float64
	Y float64
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }
func (v Vector) vec() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func toVector(v r2.Vec) Vector { return Vector{X: v.X, Y: v.Y} }

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	q := r2.Add(p.vec(), v.vec())
	return Point{X: q.X, Y: q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return toVector(r2.Sub(p.vec(), q.vec()))
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (v Vector) Add(w Vector) Vector { return toVector(r2.Add(v.vec(), w.vec())) }
func (v Vector) Mul(f float64) Vector { return toVector(r2.Scale(f, v.vec())) }
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y} }
func (v Vector) Dot(w Vector) float64 { return r2.Dot(v.vec(), w.vec()) }
func (v Vector) Cross(w Vector) float64 { return r2.Cross(v.vec(), w.vec()) }
func (v Vector) Magnitude() float64 { return r2.Norm(v.vec()) }
func (v Vector) isZero(eps float64) bool { return v.Magnitude() <= eps }
func (v Vector) isFinite() bool { return Point(v).IsFinite() }
func (v Vector) rightNormal() Vector { return Vector{X: v.Y, Y: -v.X} }

// Normalize returns the unit vector of v. The zero vector stays zero.
func (v Vector) Normalize() Vector {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return toVector(r2.Unit(v.vec()))
}

// Segment is a directed line segment.
type Segment struct {
	Start Point
	End   Point
}

// Vector returns End - Start.
func (s Segment) Vector() Vector { return s.End.Sub(s.Start) }

// Direction returns the unit vector from Start to End.
func (s Segment) Direction() Vector { return s.Vector().Normalize() }

// Length returns the length of the segment.
func (s Segment) Length() float64 { return s.Vector().Magnitude() }

// Reverse returns the segment with swapped ends.
func (s Segment) Reverse() Segment { return Segment{Start: s.End, End: s.Start} }

// inwardNormal is the unit normal pointing to the right of the segment,
// which is the polygon interior for counter-clockwise Y-down polygons.
func (s Segment) inwardNormal() Vector { return s.Direction().rightNormal() }

// signedDistance returns the distance from p to the segment's line,
// positive on the interior side.
func (s Segment) signedDistance(p Point) float64 {
	return p.Sub(s.Start).Dot(s.inwardNormal())
}

// DistanceToLine returns the distance from p to the infinite line through s.
func (s Segment) DistanceToLine(p Point) float64 {
	if s.Start == s.End {
		return p.DistanceTo(s.Start)
	}
	return math.Abs(s.signedDistance(p))
}

// distanceTo returns the distance from p to the nearest point of s.
func (s Segment) distanceTo(p Point) float64 {
	if s.Start == s.End {
		return p.DistanceTo(s.Start)
	}
	t := math.Max(0, math.Min(1, s.projection(p)))
	return p.DistanceTo(s.Start.Add(s.Vector().Mul(t)))
}

// projection returns the position of p's projection along s as a fraction
// of the segment length: 0 at Start, 1 at End.
func (s Segment) projection(p Point) float64 {
	v := s.Vector()
	return p.Sub(s.Start).Dot(v) / v.Dot(v)
}

// Ray is a half-line.
type Ray struct {
	Origin    Point
	Direction Vector
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point { return r.Origin.Add(r.Direction.Mul(t)) }

// LineIntersection is the crossing of two lines given in parametric form.
// R is the signed position along the first line and S along the second,
// both measured in units of the respective direction vectors.
type LineIntersection struct {
	Point Point
	R     float64
	S     float64
}

// intersectLines crosses the lines through a and b. It reports false for
// parallel lines.
func intersectLines(a, b Ray, eps float64) (LineIntersection, bool) {
	denom := a.Direction.Cross(b.Direction)
	if math.Abs(denom) <= eps {
		return LineIntersection{}, false
	}
	d := b.Origin.Sub(a.Origin)
	r := d.Cross(b.Direction) / denom
	s := d.Cross(a.Direction) / denom
	return LineIntersection{Point: a.At(r), R: r, S: s}, true
}

// IntersectSegments reports whether a and b share a point other than a
// common endpoint. Touching at an endpoint of only one of them counts.
func IntersectSegments(a, b Segment, eps float64) bool {
	if a.Start == b.Start || a.Start == b.End || a.End == b.Start || a.End == b.End {
		return overlapCollinear(a, b, eps)
	}
	da, db := a.Vector(), b.Vector()
	d1 := da.Cross(b.Start.Sub(a.Start))
	d2 := da.Cross(b.End.Sub(a.Start))
	d3 := db.Cross(a.Start.Sub(b.Start))
	d4 := db.Cross(a.End.Sub(b.Start))
	la, lb := da.Magnitude(), db.Magnitude()
	if ((d1 > eps*la && d2 < -eps*la) || (d1 < -eps*la && d2 > eps*la)) &&
		((d3 > eps*lb && d4 < -eps*lb) || (d3 < -eps*lb && d4 > eps*lb)) {
		return true
	}
	return onSegment(a, b.Start, eps) || onSegment(a, b.End, eps) ||
		onSegment(b, a.Start, eps) || onSegment(b, a.End, eps)
}

// overlapCollinear handles segments sharing an endpoint: they only
// intersect if they run along each other.
func overlapCollinear(a, b Segment, eps float64) bool {
	if a.Start == b.End && a.End == b.Start || a == b {
		return true
	}
	da, db := a.Direction(), b.Direction()
	if math.Abs(da.Cross(db)) > eps {
		return false
	}
	var shared, ea, eb Point
	switch {
	case a.Start == b.Start:
		shared, ea, eb = a.Start, a.End, b.End
	case a.Start == b.End:
		shared, ea, eb = a.Start, a.End, b.Start
	case a.End == b.Start:
		shared, ea, eb = a.End, a.Start, b.End
	default:
		shared, ea, eb = a.End, a.Start, b.Start
	}
	return ea.Sub(shared).Dot(eb.Sub(shared)) > 0
}

func onSegment(s Segment, p Point, eps float64) bool {
	if p == s.Start || p == s.End {
		return false
	}
	v := s.Vector()
	l := v.Magnitude()
	if l == 0 {
		return false
	}
	if math.Abs(v.Cross(p.Sub(s.Start)))/l > eps {
		return false
	}
	t := s.projection(p)
	return t > 0 && t < 1
}

func equalWithEpsilon(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
