package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
	rerrors "regexbench/internal/errors"
)

func newParseCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "parse [table-file]",
		Short: "Convert a printed results table into an exchange file",
		Long: `Reads a results table in the "| name | time_ms | iters |" layout, from a file
or from stdin, and exports it as <results_dir>/<name>_results.json. This lets
implementations that only print their table take part in comparisons.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			rs, err := benchmark.ParseTable(in, name)
			if err != nil {
				return fmt.Errorf("failed to parse table: %w", err)
			}

			path, err := benchmark.WriteResultSet(config.Current().ResultsDir, *rs)
			if err != nil {
				return rerrors.Wrap(rerrors.StageExport, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Parsed %d benchmark results\n", len(rs.Results))
			fmt.Fprintf(out, "Results exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Implementation name recorded as the engine (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
