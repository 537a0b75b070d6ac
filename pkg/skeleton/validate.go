package skeleton

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	ErrTooFewVertices   = errors.New("fewer than 3 distinct vertices")
	ErrNonFinite        = errors.New("non-finite coordinate")
	ErrZeroArea         = errors.New("zero area")
	ErrSelfIntersection = errors.New("self-intersection")
)

// checkFinite runs on the raw input, before anything does arithmetic on it.
func checkFinite(points []Point) error {
	var problems error
	for i, p := range points {
		if !p.IsFinite() {
			problems = multierr.Append(problems, errors.Wrapf(ErrNonFinite, "vertex %d (%g, %g)", i, p.X, p.Y))
		}
	}
	return problems
}

// validatePolygon checks a preprocessed polygon. Every problem found is
// reported, not just the first.
func validatePolygon(points []Point, eps, scale float64) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", len(points))
	}

	var problems error
	if math.Abs(SignedArea(points)) <= eps*scale {
		problems = multierr.Append(problems, ErrZeroArea)
	}

	n := len(points)
	edge := func(i int) Segment { return Segment{Start: points[i], End: points[(i+1)%n]} }
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := edge(i), edge(j)
			adjacent := j == i+1 || (i == 0 && j == n-1)
			touching := !adjacent && (a.Start == b.Start || a.Start == b.End || a.End == b.Start || a.End == b.End)
			if touching || IntersectSegments(a, b, eps) {
				problems = multierr.Append(problems, errors.Wrapf(ErrSelfIntersection, "edges %d and %d", i, j))
			}
		}
	}
	return problems
}
