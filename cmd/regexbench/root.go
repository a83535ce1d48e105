package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"regexbench/internal/config"
	rerrors "regexbench/internal/errors"
	"regexbench/internal/telemetry"
	"regexbench/internal/timer"
)

var exit = os.Exit

// closeLog releases the log file opened for the current invocation.
var closeLog = func() error { return nil }

// Execute runs the command line and exits with the status of the failing
// stage, if any. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if code := execute(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		exit(code)
	}
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	defer closeLog()
	if err == nil {
		return 0
	}

	stage, _ := rerrors.StageOf(err)
	telemetry.LogError("regexbench failed", err, "stage", string(stage))
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return rerrors.ExitCode(err)
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "regexbench",
		Short: "Adaptive-duration regex micro-benchmark harness",
		Long: `regexbench times a fixed suite of regex scenarios against generated corpora.
Each scenario is sampled until a target runtime or an iteration cap is reached,
then the per-operation results are printed as a table and exported as
<results_dir>/<engine>_results.json for comparison with other implementations.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cfgFile); err != nil {
				return rerrors.Wrap(rerrors.StageConfig, err)
			}
			if err := config.ValidateConfig(); err != nil {
				return rerrors.Wrap(rerrors.StageConfig, err)
			}

			settings := config.Current()
			closeLog = telemetry.InitLogger(cmd.ErrOrStderr(), settings.Verbose, settings.LogFile)
			if path := viper.ConfigFileUsed(); path != "" {
				telemetry.LogDebug("Using config file", "path", path)
			}

			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return nil
		},
		RunE: runSuite,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	pf.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	pf.String("log-file", "", "Also append JSON logs to this file")
	pf.String("results-dir", "benchmarks/results", "Directory for <engine>_results.json files")
	pf.BoolVar(&noColor, "no-color", false, "Disable coloured output")

	f := cmd.Flags()
	f.String("engine", "go", "Regex engine to benchmark (go, regexp2)")
	f.Duration("target-runtime", timer.DefaultTargetRuntime, "Accumulated time after which a scenario stops sampling")
	f.Uint64("max-iterations", timer.DefaultMaxIterations, "Maximum timed passes per scenario")
	f.Int("warmup-runs", timer.DefaultWarmupRuns, "Discarded passes before sampling")

	if err := config.BindFlags(pf); err != nil {
		panic(err)
	}
	if err := config.BindFlags(f); err != nil {
		panic(err)
	}

	cmd.AddCommand(newCompareCmd(), newParseCmd(), newHistoryCmd())
	return cmd
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
