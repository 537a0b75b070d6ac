package polyio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/pkg/errors"
)

// ReadText reads polygons written as one "x y" pair per line. A blank line
// ends a polygon. Lines starting with '#' are ignored.
func ReadText(r io.Reader) ([]Shape, error) {
	var shapes []Shape
	var points []skeleton.Point

	flush := func() {
		if len(points) > 0 {
			shapes = append(shapes, Shape{Name: defaultName(len(shapes)), Points: points})
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())

		// пустая строка закрывает многоугольник
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read polygons")
	}
	flush()

	return shapes, nil
}

func parsePoint(line string) (skeleton.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return skeleton.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return skeleton.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return skeleton.Point{}, errors.Wrap(err, "y")
	}
	return skeleton.Point{X: x, Y: y}, nil
}

// WriteArcs prints one arc per line as "x1 y1 x2 y2".
func WriteArcs(w io.Writer, arcs []skeleton.Segment) error {
	bw := bufio.NewWriter(w)
	for _, a := range arcs {
		fmt.Fprintf(bw, "%g %g %g %g\n", a.Start.X, a.Start.Y, a.End.X, a.End.Y)
	}
	return errors.Wrap(bw.Flush(), "write arcs")
}

// WritePolygons prints polygons in the ReadText format.
func WritePolygons(w io.Writer, polygons []skeleton.Polygon) error {
	bw := bufio.NewWriter(w)
	for i, poly := range polygons {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		for _, p := range poly {
			fmt.Fprintf(bw, "%g %g\n", p.X, p.Y)
		}
	}
	return errors.Wrap(bw.Flush(), "write polygons")
}
