package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-skeleton/pkg/logger"
	"github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPolygons = `0 0
10 0
10 10
0 10

0 0
20 0
20 10
0 10
`

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-d", "1", "--depth", "2.5", "--svg", "out.svg", "-f", "yaml", "in.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, o.Depths)
	assert.Equal(t, "out.svg", o.SVG)
	assert.Equal(t, "yaml", o.Format)
	assert.Equal(t, "in.yaml", o.Input)

	o, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "-", o.Input)
	assert.Equal(t, "auto", o.Format)

	_, err = parseFlags([]string{"-f", "wkt"})
	assert.Error(t, err)
}

func TestRunPrintsArcs(t *testing.T) {
	var out bytes.Buffer
	o := options{Input: "-", Format: "auto", Depths: []float64{1}, Caps: true, Faces: true}
	require.NoError(t, run(context.Background(), o, strings.NewReader(twoPolygons), &out, logger.NewNop()))

	text := out.String()
	assert.Contains(t, text, "# polygon-1: 4 arcs, 2 edge events, 0 split events, max depth ")
	assert.Contains(t, text, "# polygon-2: 5 arcs")
	assert.Contains(t, text, "# polygon-1: cap at 1\n")
	assert.Contains(t, text, "# polygon-2: faces\n")
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("skeleton:\n  debug_checks: true\nrender:\n  width: 200\n  height: 100\n"), 0o644))

	o := options{
		Input:   "-",
		Format:  "text",
		Levels:  2,
		Config:  cfgPath,
		GeoJSON: filepath.Join(dir, "out.geojson"),
		SVG:     filepath.Join(dir, "out.svg"),
		PNG:     filepath.Join(dir, "out.png"),
	}
	require.NoError(t, run(context.Background(), o, strings.NewReader(twoPolygons), &bytes.Buffer{}, logger.NewNop()))

	for _, name := range []string{"out-polygon-1", "out-polygon-2"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".geojson"))
		require.NoError(t, err)
		fc, err := geojson.UnmarshalFeatureCollection(data)
		require.NoError(t, err)
		assert.NotEmpty(t, fc.Features)

		svg, err := os.ReadFile(filepath.Join(dir, name+".svg"))
		require.NoError(t, err)
		assert.Contains(t, string(svg), `width="200.00"`)

		png, err := os.ReadFile(filepath.Join(dir, name+".png"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	}
}

func TestRunErrors(t *testing.T) {
	o := options{Input: "-", Format: "text"}
	err := run(context.Background(), o, strings.NewReader(""), &bytes.Buffer{}, logger.NewNop())
	assert.EqualError(t, err, "no polygons in input")

	err = run(context.Background(), o, strings.NewReader("0 0\n1 1\n2 2\n"), &bytes.Buffer{}, logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `polygon "polygon-1"`)

	o.Config = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, run(context.Background(), o, strings.NewReader(twoPolygons), &bytes.Buffer{}, logger.NewNop()))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "a/out.svg", outputPath("a/out.svg", "sq", false))
	assert.Equal(t, "a/out-sq.svg", outputPath("a/out.svg", "sq", true))
	assert.Equal(t, "out-sq", outputPath("out", "sq", true))
}
