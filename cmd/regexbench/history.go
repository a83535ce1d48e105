package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
	"regexbench/internal/db"
	rerrors "regexbench/internal/errors"
)

func newHistoryCmd() *cobra.Command {
	var (
		engine string
		limit  int
		latest bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		Long: `Lists runs recorded in the history store configured by history.driver and
history.dsn. With --latest the most recent run is printed as a results table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := config.Current().History
			if h.Driver == "" {
				return rerrors.Wrap(rerrors.StageConfig,
					errors.New("run history is disabled; set history.driver to sqlite or postgres"))
			}

			store, err := newStoreFunc(db.StoreConfig{Type: h.Driver, ConnectionString: h.DSN})
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if latest {
				run, err := store.LatestRun(ctx, engine)
				if errors.Is(err, db.ErrNoRuns) {
					fmt.Fprintln(out, "No runs recorded.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Run %d: %s at %s\n\n", run.ID, run.Engine, run.Timestamp)
				return benchmark.RenderTable(out, run.Results.Results)
			}

			runs, err := store.ListRuns(ctx, engine, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tENGINE\tTIMESTAMP\tSCENARIOS")
			for _, r := range runs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.ID, r.Engine, r.Timestamp, r.Scenarios)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "Only show runs of this engine")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&latest, "latest", false, "Print the latest run as a table")
	return cmd
}
