package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/viper"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
	"regexbench/internal/scenario"
)

// runCLI executes the command line in a fresh temporary working directory
// and returns its output and exit status.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errb bytes.Buffer
	code = execute(args, &out, &errb)
	return out.String(), errb.String(), code
}

// sandbox isolates global state touched by a command invocation.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	viper.Reset()
	prevLogger := slog.Default()
	prevSuite, prevCatalog, prevStore, prevNotifier := suiteFunc, catalogFunc, newStoreFunc, newNotifier
	t.Cleanup(func() {
		viper.Reset()
		slog.SetDefault(prevLogger)
		suiteFunc, catalogFunc, newStoreFunc, newNotifier = prevSuite, prevCatalog, prevStore, prevNotifier
	})
	return dir
}

// fastArgs bound every scenario to exactly n timed passes.
func fastArgs(n string) []string {
	return []string{"--max-iterations", n, "--warmup-runs", "0", "--target-runtime", "1h"}
}

func smallSuite() []scenario.Definition {
	return []scenario.Definition{
		{Name: "anchor_start", Kind: scenario.IsMatch, Pattern: "^abc", Corpus: "alpha_1000", Inner: 100},
		{Name: "match_all_simple", Kind: scenario.FindAll, Pattern: "a", Corpus: "alpha_1000", Inner: 10},
	}
}

type recordingNotifier struct {
	calls []string
}

func (r *recordingNotifier) RunCompleted(_ context.Context, rs benchmark.ResultSet, path string) {
	r.calls = append(r.calls, rs.Engine+" "+path)
}

func useRecordingNotifier() *recordingNotifier {
	rec := &recordingNotifier{}
	newNotifier = func(config.SlackSettings, *slog.Logger) runNotifier { return rec }
	return rec
}
