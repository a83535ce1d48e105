package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"regexbench/internal/benchmark"
	"regexbench/internal/ui"
)

func newCompareCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compare <baseline.json> <candidate.json>",
		Short: "Compare two exported result files",
		Long: `Loads two <engine>_results.json files and reports the speedup of the
candidate over the baseline for every scenario present in both.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := benchmark.ReadResultSet(args[0])
			if err != nil {
				return fmt.Errorf("failed to load baseline: %w", err)
			}
			candidate, err := benchmark.ReadResultSet(args[1])
			if err != nil {
				return fmt.Errorf("failed to load candidate: %w", err)
			}

			report := benchmark.Compare(*baseline, *candidate)

			out := cmd.OutOrStdout()
			if err := ui.RenderComparison(out, report, isTerminal(out)); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.SummaryLine(report))

			if output != "" {
				if err := benchmark.WriteReport(output, report); err != nil {
					return fmt.Errorf("failed to save report: %w", err)
				}
				fmt.Fprintf(out, "Report saved to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Save the comparison report as JSON")
	return cmd
}
