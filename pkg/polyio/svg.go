package polyio

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ReadSVG reads every <polygon> element of an SVG document. The SVG user
// space already points Y down, so coordinates are taken as they are.
func ReadSVG(r io.Reader) ([]Shape, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var shapes []Shape
	for i, el := range root.FindAll("polygon") {
		name := el.Attributes["id"]
		if name == "" {
			name = defaultName(i)
		}
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %q", name)
		}
		shapes = append(shapes, Shape{Name: name, Points: points})
	}
	return shapes, nil
}

// parseSVGPoints accepts both "x,y x,y" and "x y x y" lists.
func parseSVGPoints(attr string) ([]skeleton.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}

	points := make([]skeleton.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrap(err, "x")
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "y")
		}
		points = append(points, skeleton.Point{X: x, Y: y})
	}
	return points, nil
}
