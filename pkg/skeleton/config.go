package skeleton

import (
	"github.com/0x0FACED/go-skeleton/pkg/logger"
)

// Config tunes a computation. The zero value is ready to use.
type Config struct {
	// Epsilon overrides the parallelism tolerance.
	Epsilon float64 `yaml:"epsilon"`
	// CollinearEpsilon overrides the preprocessing tolerance.
	CollinearEpsilon float64 `yaml:"collinear_epsilon"`
	// RegionEpsilon overrides the point-in-region tolerance.
	RegionEpsilon float64 `yaml:"region_epsilon"`
	// SnapEpsilon overrides the distance under which event points merge.
	SnapEpsilon float64 `yaml:"snap_epsilon"`

	// TrustCounterClockwise skips the orientation test; the points must
	// already be counter-clockwise in a Y-down system.
	TrustCounterClockwise bool `yaml:"trust_counter_clockwise"`
	// MaxSteps caps the number of popped events. Zero means 64*n*n + 1024.
	MaxSteps int `yaml:"max_steps"`
	// DebugChecks tests every new arc against all earlier ones, which is
	// quadratic. The checks on the finished skeleton run regardless.
	DebugChecks bool `yaml:"debug_checks"`

	Logger *logger.ZapLogger `yaml:"-"`
	// OnEvent is called for every popped event.
	OnEvent func(EventInfo) `yaml:"-"`
}

// tolerances are the absolute values for one polygon.
type tolerances struct {
	angle     float64
	eps       float64
	collinear float64
	region    float64
	snap      float64
}

func (c Config) tolerances(scale float64) tolerances {
	t := tolerances{
		eps:       orDefault(c.Epsilon, Epsilon),
		collinear: orDefault(c.CollinearEpsilon, CollinearEpsilon),
		region:    orDefault(c.RegionEpsilon, RegionEpsilon),
		snap:      orDefault(c.SnapEpsilon, SnapEpsilon),
	}
	t.angle = t.eps
	t.eps *= scale
	t.region *= scale
	t.snap *= scale
	return t
}

func (c Config) maxSteps(n int) int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return 64*n*n + 1024
}

func (c Config) logger() *logger.ZapLogger {
	if c.Logger == nil {
		return logger.NewNop()
	}
	return c.Logger
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
