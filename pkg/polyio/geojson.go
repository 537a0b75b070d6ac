package polyio

import (
	"io"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Feature kinds written into the "kind" property.
const (
	KindOutline = "outline"
	KindArc     = "arc"
	KindFace    = "face"
	KindCap     = "cap"
)

// GeoJSON collects the outline, arcs and faces of sk, plus the wavefront at
// every requested depth, into one feature collection.
func GeoJSON(name string, sk *skeleton.Skeleton, depths []float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	outline := geojson.NewPolygonFeature([][][]float64{ring(sk.Polygon())})
	outline.SetProperty("kind", KindOutline)
	outline.SetProperty("name", name)
	outline.SetProperty("max_depth", sk.MaxDepth())
	fc.AddFeature(outline)

	for i, arc := range sk.Arcs() {
		f := geojson.NewLineStringFeature([][]float64{
			{arc.Start.X, arc.Start.Y},
			{arc.End.X, arc.End.Y},
		})
		f.SetProperty("kind", KindArc)
		f.SetProperty("index", i)
		fc.AddFeature(f)
	}

	for i, face := range sk.Faces() {
		f := geojson.NewPolygonFeature([][][]float64{ring(face)})
		f.SetProperty("kind", KindFace)
		f.SetProperty("edge", i)
		fc.AddFeature(f)
	}

	for _, d := range depths {
		for _, poly := range sk.Cap(d) {
			f := geojson.NewPolygonFeature([][][]float64{ring(poly)})
			f.SetProperty("kind", KindCap)
			f.SetProperty("depth", d)
			fc.AddFeature(f)
		}
	}

	return fc
}

// WriteGeoJSON writes GeoJSON(name, sk, depths) to w.
func WriteGeoJSON(w io.Writer, name string, sk *skeleton.Skeleton, depths []float64) error {
	data, err := GeoJSON(name, sk, depths).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write geojson")
}

// ring converts a polygon into a closed GeoJSON linear ring.
func ring(poly skeleton.Polygon) [][]float64 {
	out := make([][]float64, 0, len(poly)+1)
	for _, p := range poly {
		out = append(out, []float64{p.X, p.Y})
	}
	if len(poly) > 0 {
		out = append(out, []float64{poly[0].X, poly[0].Y})
	}
	return out
}
