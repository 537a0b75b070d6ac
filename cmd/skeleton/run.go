package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0FACED/go-skeleton/pkg/logger"
	"github.com/0x0FACED/go-skeleton/pkg/polyio"
	"github.com/0x0FACED/go-skeleton/pkg/render"
	"github.com/0x0FACED/go-skeleton/pkg/skeleton"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileConfig is the layout of the --config file.
type fileConfig struct {
	Skeleton skeleton.Config `yaml:"skeleton"`
	Render   render.Options  `yaml:"render"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func run(ctx context.Context, o options, in io.Reader, out io.Writer, log *logger.ZapLogger) error {
	cfg, err := loadConfig(o.Config)
	if err != nil {
		return err
	}
	cfg.Skeleton.Logger = log
	if o.TrustCCW {
		cfg.Skeleton.TrustCounterClockwise = true
	}

	format := polyio.Format(o.Format)
	if format == polyio.FormatAuto && o.Input != "-" {
		format = polyio.DetectFormat(o.Input)
	}
	shapes, err := polyio.Read(in, format)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return errors.New("no polygons in input")
	}
	log.Info("Многоугольники прочитаны", zap.Int("count", len(shapes)), zap.String("format", string(format)))

	for _, shape := range shapes {
		if o.Clockwise {
			shape.Clockwise = true
		}
		if err := process(ctx, o, cfg, shape, len(shapes) > 1, out, log); err != nil {
			return errors.Wrapf(err, "polygon %q", shape.Name)
		}
	}
	return nil
}

func process(ctx context.Context, o options, cfg fileConfig, shape polyio.Shape, many bool, out io.Writer, log *logger.ZapLogger) error {
	sk, err := shape.Compute(ctx, cfg.Skeleton)
	if err != nil {
		return err
	}

	depths := append(append([]float64(nil), o.Depths...), cfg.Render.Depths...)
	depths = append(depths, render.Levels(sk, o.Levels)...)

	st := sk.Stats()
	fmt.Fprintf(out, "# %s: %d arcs, %d edge events, %d split events, max depth %g\n",
		shape.Name, len(sk.Arcs()), st.EdgeEvents, st.SplitEvents, sk.MaxDepth())
	if err := polyio.WriteArcs(out, sk.Arcs()); err != nil {
		return err
	}

	if o.Faces {
		fmt.Fprintf(out, "# %s: faces\n", shape.Name)
		if err := polyio.WritePolygons(out, sk.Faces()); err != nil {
			return err
		}
	}
	if o.Caps {
		for _, d := range depths {
			fmt.Fprintf(out, "# %s: cap at %g\n", shape.Name, d)
			if err := polyio.WritePolygons(out, sk.Cap(d)); err != nil {
				return err
			}
		}
	}

	ropts := cfg.Render
	ropts.Depths = depths
	writers := []struct {
		path  string
		write func(io.Writer) error
	}{
		{o.GeoJSON, func(w io.Writer) error { return polyio.WriteGeoJSON(w, shape.Name, sk, depths) }},
		{o.SVG, func(w io.Writer) error { return render.SVG(w, sk, ropts) }},
		{o.PNG, func(w io.Writer) error { return render.PNG(w, sk, ropts) }},
	}
	for _, wr := range writers {
		if wr.path == "" {
			continue
		}
		path := outputPath(wr.path, shape.Name, many)
		if err := writeFile(path, wr.write); err != nil {
			return err
		}
		log.Info("Файл записан", zap.String("path", path))
	}
	return nil
}

// outputPath puts the polygon name in front of the extension when one
// input holds several polygons.
func outputPath(path, name string, many bool) string {
	if !many {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + name + ext
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}
