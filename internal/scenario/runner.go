package scenario

import (
	"fmt"
	"log/slog"

	"regexbench/internal/benchmark"
	rerrors "regexbench/internal/errors"
	"regexbench/internal/timer"
)

// Outcome is the result of timing one scenario.
//
// Normalized.Iterations counts logical matcher calls (timer passes times the
// inner count) and is what gets exported. Passes keeps the number of timed
// passes the adaptive loop actually made.
type Outcome struct {
	Name       string
	Kind       Kind
	Raw        benchmark.Measurement
	Normalized benchmark.Measurement
	Passes     uint64
}

// Runner times compiled scenarios one after another.
type Runner struct {
	timer  *timer.Timer
	logger *slog.Logger
}

func NewRunner(t *timer.Timer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{timer: t, logger: logger}
}

// Run times a single scenario. A matcher error or panic aborts the
// measurement and is reported as a measure stage failure.
func (r *Runner) Run(c Compiled) (_ Outcome, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = rerrors.Wrap(rerrors.StageMeasure, fmt.Errorf("scenario %s: matcher panicked: %v", c.Name, p))
		}
	}()

	raw, err := r.timer.Measure(operation(c))
	if err != nil {
		return Outcome{}, rerrors.Wrap(rerrors.StageMeasure, fmt.Errorf("scenario %s: %w", c.Name, err))
	}

	out := Outcome{
		Name:       c.Name,
		Kind:       c.Kind,
		Raw:        raw,
		Normalized: raw.Normalize(c.Inner),
		Passes:     raw.Iterations,
	}
	r.logger.Debug("scenario measured",
		"scenario", out.Name,
		"kind", out.Kind.String(),
		"passes", out.Passes,
		"iterations", out.Normalized.Iterations,
		"time_ns", out.Normalized.TimeNs,
	)
	return out, nil
}

// RunSuite times every scenario in order and inserts the normalized results
// into store. onDone, if set, is called after each scenario. The first
// failure stops the suite.
func (r *Runner) RunSuite(suite []Compiled, store *benchmark.ResultStore, onDone func(Outcome)) error {
	for _, c := range suite {
		out, err := r.Run(c)
		if err != nil {
			return err
		}
		if err := store.Insert(out.Name, out.Normalized); err != nil {
			return rerrors.Wrap(rerrors.StageMeasure, err)
		}
		if onDone != nil {
			onDone(out)
		}
	}
	return nil
}

// operation builds the timed closure for c. Each pass performs c.Inner
// matcher calls and hands every result to Consume.
func operation(c Compiled) timer.Op {
	m, text, n := c.Matcher, c.Text, c.Inner
	switch c.Kind {
	case IsMatch:
		return func() error {
			for range n {
				ok, err := m.IsMatch(text)
				if err != nil {
					return err
				}
				Consume(ok)
			}
			return nil
		}
	case Search:
		return func() error {
			for range n {
				span, ok, err := m.Find(text)
				if err != nil {
					return err
				}
				Consume(span)
				Consume(ok)
			}
			return nil
		}
	case FindAll:
		return func() error {
			for range n {
				spans, err := m.FindAll(text)
				if err != nil {
					return err
				}
				Consume(len(spans))
			}
			return nil
		}
	default:
		return func() error {
			return fmt.Errorf("unsupported scenario kind %v", c.Kind)
		}
	}
}
