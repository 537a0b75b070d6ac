// Package polyio reads polygons from plain text, YAML and SVG files and
// writes computed skeletons back out as GeoJSON or text.
package polyio

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/pkg/errors"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatSVG  Format = "svg"
)

// ErrUnknownFormat is returned by Read for a format it cannot decode.
var ErrUnknownFormat = errors.New("unknown polygon format")

// Shape is one polygon read from a file.
type Shape struct {
	Name   string
	Points []skeleton.Point
	// Clockwise marks a ring known to be clockwise in a Y-down system. Such
	// rings skip the orientation test.
	Clockwise bool
}

// Compute builds the skeleton of the shape.
func (s Shape) Compute(ctx context.Context, cfg skeleton.Config) (*skeleton.Skeleton, error) {
	if !s.Clockwise {
		return skeleton.ComputeContext(ctx, s.Points, cfg)
	}
	points := slices.Clone(s.Points)
	slices.Reverse(points)
	cfg.TrustCounterClockwise = true
	return skeleton.ComputeContext(ctx, points, cfg)
}

// DetectFormat picks a format from the file extension. Anything unknown is
// read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".svg":
		return FormatSVG
	default:
		return FormatText
	}
}

// Read decodes every polygon in r. FormatAuto is treated as text because a
// reader carries no name to guess from.
func Read(r io.Reader, format Format) ([]Shape, error) {
	switch format {
	case FormatText, FormatAuto, "":
		return ReadText(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatSVG:
		return ReadSVG(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func defaultName(i int) string {
	return "polygon-" + strconv.Itoa(i+1)
}
