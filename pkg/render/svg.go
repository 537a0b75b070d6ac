package render

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	svg "github.com/ajstarks/svgo/float"
)

// SVG writes sk as an SVG document.
func SVG(w io.Writer, sk *skeleton.Skeleton, o Options) error {
	o = o.withDefaults()
	poly := sk.Polygon()
	vp := fit(poly, o)

	canvas := svg.New(w)
	canvas.Start(float64(o.Width), float64(o.Height))
	canvas.Rect(0, 0, float64(o.Width), float64(o.Height), canvas.RGB(background.bytes()))

	if o.Faces {
		faces := sk.Faces()
		canvas.Gid("faces")
		for i, face := range faces {
			xs, ys := vp.coords(face)
			canvas.Polygon(xs, ys, canvas.RGB(faceColor(i, len(faces)).bytes()))
		}
		canvas.Gend()
	}

	xs, ys := vp.coords(poly)
	canvas.Polygon(xs, ys, "fill:none;"+stroke(outline, 2))

	canvas.Gid("caps")
	for _, d := range o.Depths {
		for _, c := range sk.Cap(d) {
			xs, ys := vp.coords(c)
			canvas.Polygon(xs, ys, "fill:none;"+stroke(capColor, 1))
		}
	}
	canvas.Gend()

	canvas.Gid("arcs")
	for _, arc := range sk.Arcs() {
		x1, y1 := vp.apply(arc.Start)
		x2, y2 := vp.apply(arc.End)
		canvas.Line(x1, y1, x2, y2, stroke(arcColor, 1.5))
	}
	canvas.Gend()

	for _, p := range sk.Graph().Vertices() {
		x, y := vp.apply(p)
		canvas.Circle(x, y, 2, canvas.RGB(arcColor.bytes()))
	}

	canvas.End()
	return nil
}

func stroke(c rgb, width float64) string {
	r, g, b := c.bytes()
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-width:%g", r, g, b, width)
}
