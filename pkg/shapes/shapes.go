// Package shapes generates test and demo polygons. Every generator returns
// points counter-clockwise with Y pointing up; the skeleton engine reorients
// them itself.
package shapes

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/0x0FACED/go-skeleton/pkg/polyio"
	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	petname "github.com/dustinkirkland/golang-petname"
)

// Kind names a generator for Generate.
type Kind string

const (
	KindRegular   Kind = "regular"
	KindStar      Kind = "star"
	KindRectangle Kind = "rectangle"
	KindL         Kind = "l"
	KindT         Kind = "t"
	KindU         Kind = "u"
	KindComb      Kind = "comb"
	KindAmoeba    Kind = "amoeba"
	KindSkyline   Kind = "skyline"
	KindBlob      Kind = "blob"
)

// Kinds lists every generator in a stable order.
var Kinds = []Kind{
	KindRegular, KindStar, KindRectangle, KindL, KindT, KindU,
	KindComb, KindAmoeba, KindSkyline, KindBlob,
}

// Regular returns a regular n-gon of circumradius r centred at the origin.
func Regular(n int, r float64) []skeleton.Point {
	out := make([]skeleton.Point, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = skeleton.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return out
}

// Star returns a star with n rays alternating between the outer and inner
// radius.
func Star(n int, outer, inner float64) []skeleton.Point {
	out := make([]skeleton.Point, 2*n)
	for i := range out {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi * float64(i) / float64(n)
		out[i] = skeleton.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return out
}

func Rectangle(w, h float64) []skeleton.Point {
	return []skeleton.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

// LShape returns an L of the given outer size with arms t thick.
func LShape(w, h, t float64) []skeleton.Point {
	return []skeleton.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: t},
		{X: t, Y: t}, {X: t, Y: h}, {X: 0, Y: h},
	}
}

// TShape returns a T standing on its stem.
func TShape(w, h, t float64) []skeleton.Point {
	l := (w - t) / 2
	return []skeleton.Point{
		{X: l, Y: 0}, {X: l + t, Y: 0}, {X: l + t, Y: h - t}, {X: w, Y: h - t},
		{X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: h - t}, {X: l, Y: h - t},
	}
}

// UShape returns a U opening upwards.
func UShape(w, h, t float64) []skeleton.Point {
	return []skeleton.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: w - t, Y: h},
		{X: w - t, Y: t}, {X: t, Y: t}, {X: t, Y: h}, {X: 0, Y: h},
	}
}

// Comb returns a bar of the given width with teeth rising from it. Teeth and
// gaps are equally wide.
func Comb(teeth int, w, h float64) []skeleton.Point {
	base := h / 3
	step := w / float64(2*teeth-1)

	out := []skeleton.Point{{X: 0, Y: 0}, {X: w, Y: 0}}
	for i := teeth - 1; i >= 0; i-- {
		x := float64(2*i) * step
		out = append(out,
			skeleton.Point{X: x + step, Y: h},
			skeleton.Point{X: x, Y: h},
		)
		if i > 0 {
			out = append(out,
				skeleton.Point{X: x, Y: base},
				skeleton.Point{X: x - step, Y: base},
			)
		}
	}
	return out
}

// Amoeba is a fixed polygon mixing convex and reflex vertices.
func Amoeba() []skeleton.Point {
	return []skeleton.Point{
		{X: 100, Y: 13}, {X: 89, Y: 54}, {X: 178, Y: 6}, {X: 147, Y: 59},
		{X: 179, Y: 91}, {X: 142, Y: 101}, {X: 193, Y: 122}, {X: 160, Y: 138},
		{X: 177, Y: 186}, {X: 125, Y: 168}, {X: 93, Y: 185}, {X: 62, Y: 161},
		{X: 8, Y: 166}, {X: 78, Y: 102}, {X: 12, Y: 92}, {X: 26, Y: 61},
		{X: 11, Y: 14},
	}
}

// Skyline returns an orthogonal polygon: a flat bottom and a staircase top
// with n columns of random height between h/4 and h.
func Skyline(rng *rand.Rand, n int, w, h float64) []skeleton.Point {
	step := w / float64(n)
	heights := make([]float64, n)
	for i := range heights {
		heights[i] = h/4 + rng.Float64()*3*h/4
	}

	out := []skeleton.Point{{X: 0, Y: 0}, {X: w, Y: 0}}
	for i := n - 1; i >= 0; i-- {
		out = append(out,
			skeleton.Point{X: float64(i+1) * step, Y: heights[i]},
			skeleton.Point{X: float64(i) * step, Y: heights[i]},
		)
	}
	// соседние колонки одной высоты дают коллинеарные вершины,
	// их уберет предобработка
	return out
}

// Blob returns a star-shaped polygon: n vertices at increasing angles with
// radii drawn between r/3 and r.
func Blob(rng *rand.Rand, n int, r float64) []skeleton.Point {
	out := make([]skeleton.Point, n)
	for i := range out {
		a := 2 * math.Pi * (float64(i) + 0.8*rng.Float64()) / float64(n)
		rr := r/3 + rng.Float64()*2*r/3
		out[i] = skeleton.Point{X: rr * math.Cos(a), Y: rr * math.Sin(a)}
	}
	return out
}

// Generate builds a shape of the given kind with roughly n vertices and a
// size around size units. Random kinds draw from rng.
func Generate(rng *rand.Rand, kind Kind, n int, size float64) polyio.Shape {
	n = max(n, 3)
	var points []skeleton.Point
	switch kind {
	case KindRegular:
		points = Regular(n, size/2)
	case KindStar:
		points = Star(max(n/2, 3), size/2, size/5)
	case KindRectangle:
		points = Rectangle(size, size/2)
	case KindL:
		points = LShape(size, size, size/3)
	case KindT:
		points = TShape(size, size, size/3)
	case KindU:
		points = UShape(size, size, size/4)
	case KindComb:
		points = Comb(max(n/4, 2), size, size/2)
	case KindAmoeba:
		points = scaled(Amoeba(), size/200)
	case KindSkyline:
		points = Skyline(rng, max(n/2, 2), size, size/2)
	default:
		kind = KindBlob
		points = Blob(rng, n, size/2)
	}
	return polyio.Shape{Name: label(kind, len(points)), Points: points}
}

// Random picks a random generator.
func Random(rng *rand.Rand, n int, size float64) polyio.Shape {
	return Generate(rng, Kinds[rng.Intn(len(Kinds))], n, size)
}

func label(kind Kind, vertices int) string {
	return petname.Generate(2, "-") + "-" + string(kind) + "-" + strconv.Itoa(vertices)
}

func scaled(points []skeleton.Point, k float64) []skeleton.Point {
	out := make([]skeleton.Point, len(points))
	for i, p := range points {
		out[i] = skeleton.Point{X: p.X * k, Y: p.Y * k}
	}
	return out
}
