package main

import (
	"fmt"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// polyline добавляет на график ломаную, замкнутую если closed
func polyline(scatter *charts.Scatter, series string, style opts.LineStyle, points []skeleton.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	data := make([]opts.LineData, 0, len(points)+1)
	for _, p := range points {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	if closed {
		data = append(data, opts.LineData{Value: []float64{points[0].X, points[0].Y}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(series, data).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: style.Color,
		}),
	)
	scatter.Overlap(line)
}

// Преобразуем скелет в Echarts для отображения
func skeletonToEcharts(name string, sk *skeleton.Skeleton, depths []float64) *charts.Scatter {
	scatter := charts.NewScatter()

	title := fmt.Sprintf("Прямой скелет: %s", name)
	prepareScatter(scatter, title)

	points := make([]opts.ScatterData, 0)
	for _, p := range sk.Graph().Vertices() {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Узлы", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	polyline(scatter, "Многоугольник", opts.LineStyle{Width: 2, Color: "lightgray"}, sk.Polygon(), true)

	for _, arc := range sk.Arcs() {
		polyline(scatter, "Дуги", opts.LineStyle{Width: 2, Color: "lightgreen"}, []skeleton.Point{arc.Start, arc.End}, false)
	}

	for _, d := range depths {
		for _, c := range sk.Cap(d) {
			polyline(scatter, "Срезы", opts.LineStyle{Width: 1, Color: "cornflowerblue"}, c, true)
		}
	}

	return scatter
}
