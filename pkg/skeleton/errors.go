package skeleton

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// InvalidInputError reports a polygon the engine refuses to process. Problems
// holds every detected defect combined with multierr.
type InvalidInputError struct {
	Problems error
}

func (e *InvalidInputError) Error() string {
	return "invalid polygon: " + e.Problems.Error()
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *InvalidInputError) Unwrap() []error {
	return multierr.Errors(e.Problems)
}

// DegenerateGeometryError reports an undefined bisector or intersection.
type DegenerateGeometryError struct {
	Reason string
	Points []Point
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s at %s", e.Reason, formatPoints(e.Points))
}

// TopologyInvariantViolation reports a broken wavefront: a consumed node
// that came back, a registry miss that cannot be recovered, a runaway loop or
// nodes left over once every event was handled.
type TopologyInvariantViolation struct {
	Reason string
	Event  string
	Points []Point
}

func (e *TopologyInvariantViolation) Error() string {
	var b strings.Builder
	b.WriteString("topology invariant violated: ")
	b.WriteString(e.Reason)
	if e.Event != "" {
		b.WriteString(" (")
		b.WriteString(e.Event)
		b.WriteString(" event)")
	}
	if len(e.Points) > 0 {
		b.WriteString(" at ")
		b.WriteString(formatPoints(e.Points))
	}
	return b.String()
}

func formatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func violation(event, reason string, points ...Point) error {
	return &TopologyInvariantViolation{Reason: reason, Event: event, Points: points}
}

func degenerate(reason string, points ...Point) error {
	return &DegenerateGeometryError{Reason: reason, Points: points}
}
