package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
	"regexbench/internal/corpus"
	"regexbench/internal/db"
	rerrors "regexbench/internal/errors"
	"regexbench/internal/matcher"
	"regexbench/internal/metrics"
	"regexbench/internal/notify"
	"regexbench/internal/scenario"
	"regexbench/internal/telemetry"
	"regexbench/internal/timer"
)

// Seams replaced in tests.
var (
	suiteFunc    = scenario.DefaultSuite
	catalogFunc  = corpus.DefaultCatalog
	newStoreFunc = db.NewStore
	newNotifier  = func(s config.SlackSettings, logger *slog.Logger) runNotifier {
		return notify.NewManager(s, logger)
	}
)

type runNotifier interface {
	RunCompleted(ctx context.Context, rs benchmark.ResultSet, path string)
}

// runSuite compiles the whole suite, measures every scenario in order,
// prints the table and exports the result set. Nothing is written unless
// every scenario was measured.
func runSuite(cmd *cobra.Command, _ []string) error {
	settings := config.Current()
	out := cmd.OutOrStdout()

	engine, err := matcher.Lookup(settings.Engine)
	if err != nil {
		return rerrors.Wrap(rerrors.StageConfig, err)
	}
	logger := slog.Default().With("engine", engine.Name())

	catalog := catalogFunc()
	compiled, err := scenario.Compile(engine, suiteFunc(), catalog)
	if err != nil {
		return err
	}
	logger.Info("suite compiled", "scenarios", len(compiled), "corpora", len(catalog))

	runner := scenario.NewRunner(timer.New(timer.WithConfig(settings.Timer)), logger)
	store := benchmark.NewResultStore()
	m := metrics.NewMetrics()

	fmt.Fprintf(out, "Running %d scenarios with engine %s\n", len(compiled), engine.Name())
	start := time.Now()
	err = runner.RunSuite(compiled, store, func(o scenario.Outcome) {
		m.RecordScenario(engine.Name(), o.Name, o.Normalized, o.Passes)
		fmt.Fprintf(out, "✓ %s\n", o.Name)
	})
	if err != nil {
		return err
	}
	m.RecordRun(engine.Name(), time.Since(start).Seconds())

	fmt.Fprintln(out)
	fmt.Fprint(out, store.Render())

	rs := store.ToExchangeFormat(engine.Name())
	path, err := benchmark.WriteResultSet(settings.ResultsDir, rs)
	if err != nil {
		return rerrors.Wrap(rerrors.StageExport, err)
	}
	fmt.Fprintf(out, "\nResults exported to: %s\n", path)
	logger.Info("results exported", "path", path, "scenarios", store.Len())

	publish(cmd.Context(), settings, rs, path, m, logger)
	return nil
}

// publish hands an exported run to the optional sinks. Their failures are
// logged as warnings; the exported file is the only required output.
func publish(ctx context.Context, settings config.Settings, rs benchmark.ResultSet, path string, m *metrics.Metrics, logger *slog.Logger) {
	if settings.History.Driver != "" {
		if id, err := saveHistory(ctx, settings.History, rs); err != nil {
			telemetry.LogWarn("failed to record run history", err, "engine", rs.Engine, "driver", settings.History.Driver)
		} else {
			telemetry.LogInfo("run recorded", "engine", rs.Engine, "run_id", id)
		}
	}

	if settings.MetricsTextfile != "" {
		if err := m.WriteTextfile(settings.MetricsTextfile); err != nil {
			telemetry.LogWarn("failed to write metrics", err, "engine", rs.Engine, "path", settings.MetricsTextfile)
		}
	}

	newNotifier(settings.Slack, logger).RunCompleted(ctx, rs, path)
}

func saveHistory(ctx context.Context, h config.HistorySettings, rs benchmark.ResultSet) (int64, error) {
	store, err := newStoreFunc(db.StoreConfig{Type: h.Driver, ConnectionString: h.DSN})
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.SaveRun(ctx, rs)
}
