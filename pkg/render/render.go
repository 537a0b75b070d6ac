// Package render draws a skeleton as SVG or PNG. The polygon is scaled to
// fit the picture and keeps the Y-down orientation of both formats.
package render

import (
	"math"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
)

// Options controls the picture size and which wavefront levels are drawn.
type Options struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
	// Depths lists the offsets at which the shrunk polygon is drawn.
	Depths []float64 `yaml:"depths"`
	// Faces fills each face with its own colour.
	Faces bool `yaml:"faces"`
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Margin <= 0 {
		o.Margin = 20
	}
	return o
}

// Levels returns n evenly spaced depths strictly between 0 and the depth at
// which sk vanishes.
func Levels(sk *skeleton.Skeleton, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := sk.MaxDepth() / float64(n+1)
	out := make([]float64, n)
	for i := range out {
		out[i] = step * float64(i+1)
	}
	return out
}

// viewport maps polygon coordinates into picture coordinates.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
}

func fit(poly skeleton.Polygon, o Options) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	w := float64(o.Width) - 2*o.Margin
	h := float64(o.Height) - 2*o.Margin
	dx, dy := maxX-minX, maxY-minY

	scale := 1.0
	if dx > 0 && dy > 0 {
		scale = min(w/dx, h/dy)
	}
	return viewport{
		minX:  minX,
		minY:  minY,
		scale: scale,
		offX:  o.Margin + (w-dx*scale)/2,
		offY:  o.Margin + (h-dy*scale)/2,
	}
}

func (v viewport) apply(p skeleton.Point) (float64, float64) {
	return v.offX + (p.X-v.minX)*v.scale, v.offY + (p.Y-v.minY)*v.scale
}

func (v viewport) coords(poly skeleton.Polygon) ([]float64, []float64) {
	xs := make([]float64, len(poly))
	ys := make([]float64, len(poly))
	for i, p := range poly {
		xs[i], ys[i] = v.apply(p)
	}
	return xs, ys
}

type rgb struct{ r, g, b float64 }

func (c rgb) bytes() (int, int, int) {
	conv := func(v float64) int { return int(math.Round(min(max(v, 0), 1) * 255)) }
	return conv(c.r), conv(c.g), conv(c.b)
}

var (
	background = rgb{0.12, 0.12, 0.12}
	outline    = rgb{0.83, 0.83, 0.83}
	arcColor   = rgb{0.56, 0.93, 0.56}
	capColor   = rgb{0.39, 0.58, 0.93}
)

// faceColor spreads hues around the colour wheel.
func faceColor(i, n int) rgb {
	h := float64(i) / float64(max(n, 1))
	return hsv(h, 0.35, 0.45)
}

func hsv(h, s, v float64) rgb {
	i := math.Floor(h * 6)
	f := h*6 - i
	p, q, t := v*(1-s), v*(1-f*s), v*(1-(1-f)*s)
	switch int(i) % 6 {
	case 0:
		return rgb{v, t, p}
	case 1:
		return rgb{q, v, p}
	case 2:
		return rgb{p, v, t}
	case 3:
		return rgb{p, q, v}
	case 4:
		return rgb{t, p, v}
	default:
		return rgb{v, p, q}
	}
}
