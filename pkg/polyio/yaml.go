package polyio

import (
	"io"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Polygons []yamlPolygon `yaml:"polygons"`
}

type yamlPolygon struct {
	Name      string      `yaml:"name"`
	Clockwise bool        `yaml:"clockwise"`
	Points    [][]float64 `yaml:"points"`
}

// ReadYAML reads a document of the form
//
//	polygons:
//	  - name: square
//	    clockwise: false
//	    points: [[0, 0], [10, 0], [10, 10], [0, 10]]
func ReadYAML(r io.Reader) ([]Shape, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode yaml polygons")
	}

	shapes := make([]Shape, 0, len(doc.Polygons))
	for i, poly := range doc.Polygons {
		name := poly.Name
		if name == "" {
			name = defaultName(i)
		}
		points := make([]skeleton.Point, len(poly.Points))
		for j, xy := range poly.Points {
			if len(xy) != 2 {
				return nil, errors.Errorf("polygon %q: point %d has %d coordinates", name, j, len(xy))
			}
			points[j] = skeleton.Point{X: xy[0], Y: xy[1]}
		}
		shapes = append(shapes, Shape{Name: name, Points: points, Clockwise: poly.Clockwise})
	}
	return shapes, nil
}

// WriteYAML writes shapes in the ReadYAML format.
func WriteYAML(w io.Writer, shapes []Shape) error {
	doc := yamlDocument{Polygons: make([]yamlPolygon, len(shapes))}
	for i, s := range shapes {
		points := make([][]float64, len(s.Points))
		for j, p := range s.Points {
			points[j] = []float64{p.X, p.Y}
		}
		doc.Polygons[i] = yamlPolygon{Name: s.Name, Clockwise: s.Clockwise, Points: points}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml polygons")
	}
	return errors.Wrap(enc.Close(), "encode yaml polygons")
}
