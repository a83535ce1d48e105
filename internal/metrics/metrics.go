package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"regexbench/internal/benchmark"
)

// Metrics represents the Prometheus collectors fed by a benchmark run
type Metrics struct {
	registry *prometheus.Registry

	ScenarioSeconds    *prometheus.GaugeVec
	ScenarioIterations *prometheus.GaugeVec
	ScenarioPasses     *prometheus.GaugeVec
	ScenariosTotal     *prometheus.CounterVec
	RunDuration        *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on a private
// registry, so repeated runs in one process never collide.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.ScenarioSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regexbench_scenario_seconds",
			Help: "Mean wall-clock time of one logical matcher call",
		},
		[]string{"engine", "scenario"},
	)

	m.ScenarioIterations = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regexbench_scenario_iterations",
			Help: "Logical matcher calls measured (timer passes times inner iterations)",
		},
		[]string{"engine", "scenario"},
	)

	m.ScenarioPasses = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regexbench_scenario_passes",
			Help: "Timed passes made by the adaptive timer",
		},
		[]string{"engine", "scenario"},
	)

	m.ScenariosTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexbench_scenarios_total",
			Help: "Total number of scenarios measured",
		},
		[]string{"engine"},
	)

	m.RunDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regexbench_run_duration_seconds",
			Help: "Wall-clock duration of the whole suite",
		},
		[]string{"engine"},
	)

	m.registry.MustRegister(
		m.ScenarioSeconds,
		m.ScenarioIterations,
		m.ScenarioPasses,
		m.ScenariosTotal,
		m.RunDuration,
	)

	return m
}

// Registry exposes the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordScenario records one normalized measurement.
func (m *Metrics) RecordScenario(engine, scenario string, meas benchmark.Measurement, passes uint64) {
	m.ScenarioSeconds.WithLabelValues(engine, scenario).Set(meas.TimeNs / 1e9)
	m.ScenarioIterations.WithLabelValues(engine, scenario).Set(float64(meas.Iterations))
	m.ScenarioPasses.WithLabelValues(engine, scenario).Set(float64(passes))
	m.ScenariosTotal.WithLabelValues(engine).Inc()
}

// RecordRun records how long the suite took.
func (m *Metrics) RecordRun(engine string, seconds float64) {
	m.RunDuration.WithLabelValues(engine).Set(seconds)
}

// WriteTextfile writes every collector in the Prometheus text format, for
// pickup by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
