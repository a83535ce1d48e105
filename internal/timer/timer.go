// Package timer measures the mean wall-clock cost of an operation without a
// fixed iteration count.
//
// After a few discarded warmup calls the operation is timed one call at a
// time until either the accumulated time reaches the target runtime or the
// iteration cap is hit. Fast operations therefore collect many samples while
// pathologically slow ones are capped. The cap bounds the number of calls,
// not the duration of a single call.
package timer

import (
	"fmt"
	"time"

	"regexbench/internal/benchmark"
)

const (
	DefaultTargetRuntime = 100 * time.Millisecond
	DefaultMaxIterations = 100_000
	DefaultWarmupRuns    = 3
)

// Config bounds a measurement.
type Config struct {
	TargetRuntime time.Duration
	MaxIterations uint64
	WarmupRuns    int
}

func DefaultConfig() Config {
	return Config{
		TargetRuntime: DefaultTargetRuntime,
		MaxIterations: DefaultMaxIterations,
		WarmupRuns:    DefaultWarmupRuns,
	}
}

// Option configures a Timer. Options are applied in order.
type Option func(*Config)

// WithTargetRuntime sets the accumulated time after which sampling stops.
// Non-positive values are ignored.
func WithTargetRuntime(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.TargetRuntime = d
		}
	}
}

// WithMaxIterations caps the number of timed calls.
func WithMaxIterations(n uint64) Option {
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithWarmupRuns sets the number of discarded calls. Negative values are ignored.
func WithWarmupRuns(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.WarmupRuns = n
		}
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// Op is the operation under measurement. It must be idempotent; a returned
// error aborts the measurement.
type Op func() error

// Timer runs adaptive measurements. It holds no per-measurement state and
// may be reused sequentially.
type Timer struct {
	cfg Config
	now func() time.Time
}

func New(opts ...Option) *Timer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Timer{cfg: cfg, now: time.Now}
}

func (t *Timer) Config() Config {
	return t.cfg
}

// Measure times op and returns the mean cost per call together with the
// number of timed calls. If no call was timed the mean is zero.
func (t *Timer) Measure(op Op) (benchmark.Measurement, error) {
	for i := range t.cfg.WarmupRuns {
		if err := op(); err != nil {
			return benchmark.Measurement{}, fmt.Errorf("warmup run %d: %w", i+1, err)
		}
	}

	var total time.Duration
	var n uint64
	for total < t.cfg.TargetRuntime && n < t.cfg.MaxIterations {
		start := t.now()
		err := op()
		elapsed := t.now().Sub(start)
		if err != nil {
			return benchmark.Measurement{}, fmt.Errorf("sample %d: %w", n+1, err)
		}
		total += elapsed
		n++
	}

	if n == 0 {
		return benchmark.NewMeasurement(0, 0), nil
	}
	return benchmark.NewMeasurement(float64(total.Nanoseconds())/float64(n), n), nil
}
