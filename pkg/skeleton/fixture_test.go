package skeleton

import (
	"math"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name           string       `yaml:"name"`
	Points         [][2]float64 `yaml:"points"`
	Arcs           int          `yaml:"arcs"`
	SplitEvents    *int         `yaml:"split_events"`
	MinSplitEvents int          `yaml:"min_split_events"`
	MaxDepth       float64      `yaml:"max_depth"`
}

func (f fixture) polygon() []Point {
	out := make([]Point, len(f.Points))
	for i, p := range f.Points {
		out[i] = Point{X: p[0], Y: p[1]}
	}
	return out
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile("testdata/polygons.yaml")
	require.NoError(t, err)
	var doc struct {
		Polygons []fixture `yaml:"polygons"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Polygons)
	return doc.Polygons
}

func fixtureByName(t *testing.T, name string) []Point {
	t.Helper()
	for _, f := range loadFixtures(t) {
		if f.Name == name {
			return f.polygon()
		}
	}
	t.Fatalf("no fixture %q", name)
	return nil
}

// regular returns a regular n-gon, counter-clockwise with Y up.
func regular(n int, r float64) []Point {
	out := make([]Point, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return out
}

func reversed(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// canonicalArcs orders each arc's ends and sorts the arcs, so arc sets from
// different runs can be compared.
func canonicalArcs(arcs []Segment) []Segment {
	out := make([]Segment, len(arcs))
	for i, a := range arcs {
		if lessRounded(a.End, a.Start) {
			a = a.Reverse()
		}
		out[i] = a
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if lessRounded(a.Start, b.Start) {
			return true
		}
		if lessRounded(b.Start, a.Start) {
			return false
		}
		return lessRounded(a.End, b.End)
	})
	return out
}

func lessRounded(p, q Point) bool {
	px, py, qx, qy := round(p.X), round(p.Y), round(q.X), round(q.Y)
	if px != qx {
		return px < qx
	}
	return py < qy
}

func polygonArea(p Polygon) float64 {
	return math.Abs(SignedArea(p))
}
