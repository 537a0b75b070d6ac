package render

import (
	"io"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// PNG rasterizes sk and writes it as a PNG image.
func PNG(w io.Writer, sk *skeleton.Skeleton, o Options) error {
	o = o.withDefaults()
	poly := sk.Polygon()
	vp := fit(poly, o)

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(background.r, background.g, background.b)
	dc.Clear()

	if o.Faces {
		faces := sk.Faces()
		for i, face := range faces {
			c := faceColor(i, len(faces))
			dc.SetRGB(c.r, c.g, c.b)
			path(dc, vp, face)
			dc.Fill()
		}
	}

	dc.SetRGB(outline.r, outline.g, outline.b)
	dc.SetLineWidth(2)
	path(dc, vp, poly)
	dc.Stroke()

	dc.SetRGB(capColor.r, capColor.g, capColor.b)
	dc.SetLineWidth(1)
	for _, d := range o.Depths {
		for _, c := range sk.Cap(d) {
			path(dc, vp, c)
			dc.Stroke()
		}
	}

	dc.SetRGB(arcColor.r, arcColor.g, arcColor.b)
	dc.SetLineWidth(1.5)
	for _, arc := range sk.Arcs() {
		x1, y1 := vp.apply(arc.Start)
		x2, y2 := vp.apply(arc.End)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	for _, p := range sk.Graph().Vertices() {
		x, y := vp.apply(p)
		dc.DrawCircle(x, y, 2)
		dc.Fill()
	}

	return errors.Wrap(dc.EncodePNG(w), "encode png")
}

func path(dc *gg.Context, vp viewport, poly skeleton.Polygon) {
	for i, p := range poly {
		x, y := vp.apply(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}
