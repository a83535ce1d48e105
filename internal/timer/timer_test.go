package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step every time an operation runs.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) op(calls *int) Op {
	return func() error {
		*calls++
		c.now = c.now.Add(c.step)
		return nil
	}
}

func newFakeTimer(step time.Duration, opts ...Option) (*Timer, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0), step: step}
	tm := New(opts...)
	tm.now = clock.Now
	return tm, clock
}

func TestDefaultConfig(t *testing.T) {
	tm := New()
	assert.Equal(t, 100*time.Millisecond, tm.Config().TargetRuntime)
	assert.Equal(t, uint64(100_000), tm.Config().MaxIterations)
	assert.Equal(t, 3, tm.Config().WarmupRuns)
}

func TestOptions(t *testing.T) {
	tm := New(WithTargetRuntime(time.Second), WithMaxIterations(5), WithWarmupRuns(0))
	assert.Equal(t, Config{TargetRuntime: time.Second, MaxIterations: 5, WarmupRuns: 0}, tm.Config())

	ignored := New(WithTargetRuntime(-1), WithWarmupRuns(-2))
	assert.Equal(t, DefaultConfig(), ignored.Config())

	cfg := Config{TargetRuntime: time.Millisecond, MaxIterations: 9, WarmupRuns: 1}
	assert.Equal(t, cfg, New(WithConfig(cfg)).Config())
}

func TestMeasure_StopsAtTargetRuntime(t *testing.T) {
	tm, clock := newFakeTimer(10*time.Millisecond,
		WithTargetRuntime(100*time.Millisecond), WithMaxIterations(1000), WithWarmupRuns(3))

	calls := 0
	m, err := tm.Measure(clock.op(&calls))
	require.NoError(t, err)

	assert.Equal(t, uint64(10), m.Iterations)
	assert.Equal(t, 13, calls) // 3 warmup + 10 timed
	assert.Equal(t, float64(10*time.Millisecond), m.TimeNs)
	assert.Equal(t, 10.0, m.TimeMs)
}

func TestMeasure_StopsAtMaxIterations(t *testing.T) {
	tm, clock := newFakeTimer(time.Microsecond,
		WithTargetRuntime(time.Hour), WithMaxIterations(25), WithWarmupRuns(0))

	calls := 0
	m, err := tm.Measure(clock.op(&calls))
	require.NoError(t, err)

	assert.Equal(t, uint64(25), m.Iterations)
	assert.Equal(t, 25, calls)
	assert.Equal(t, 1000.0, m.TimeNs)
}

func TestMeasure_SlowOperationSampledOnce(t *testing.T) {
	tm, clock := newFakeTimer(150*time.Millisecond,
		WithTargetRuntime(100*time.Millisecond), WithWarmupRuns(1))

	calls := 0
	m, err := tm.Measure(clock.op(&calls))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), m.Iterations)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 150.0, m.TimeMs)
}

func TestMeasure_ZeroMaxIterations(t *testing.T) {
	tm, clock := newFakeTimer(time.Millisecond, WithMaxIterations(0), WithWarmupRuns(2))

	calls := 0
	m, err := tm.Measure(clock.op(&calls))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), m.Iterations)
	assert.Equal(t, 0.0, m.TimeNs)
	assert.Equal(t, 0.0, m.TimeMs)
	assert.Equal(t, 2, calls)
}

func TestMeasure_RealClockFastOperation(t *testing.T) {
	tm := New(WithTargetRuntime(100*time.Millisecond), WithMaxIterations(2000), WithWarmupRuns(3))

	x := 0
	m, err := tm.Measure(func() error {
		x++
		return nil
	})
	require.NoError(t, err)

	// A sub-microsecond closure cannot accumulate 100ms within 2000 calls.
	assert.Equal(t, uint64(2000), m.Iterations)
	assert.Equal(t, 2003, x)
	assert.Equal(t, m.TimeNs/1_000_000, m.TimeMs)
	assert.GreaterOrEqual(t, m.TimeNs, 0.0)
}

func TestMeasure_IterationsBounded(t *testing.T) {
	for _, limit := range []uint64{1, 2, 17, 300} {
		tm := New(WithTargetRuntime(time.Millisecond), WithMaxIterations(limit), WithWarmupRuns(0))
		m, err := tm.Measure(func() error { return nil })
		require.NoError(t, err)
		assert.LessOrEqual(t, m.Iterations, limit)
		assert.GreaterOrEqual(t, m.Iterations, uint64(1))
	}
}

func TestMeasure_OperationFailureAborts(t *testing.T) {
	boom := errors.New("boom")

	tm := New(WithWarmupRuns(2), WithMaxIterations(10))
	calls := 0
	_, err := tm.Measure(func() error {
		calls++
		if calls == 4 {
			return boom
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "sample 2")
	assert.Equal(t, 4, calls)

	_, err = tm.Measure(func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "warmup run 1")
}
