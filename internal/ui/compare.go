package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"

	"regexbench/internal/benchmark"
)

// highlights is how many scenarios the top and bottom lists show.
const highlights = 5

func formatSpeedup(r benchmark.Ratio) string {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", f)
}

// MarkdownComparison renders a comparison report as a markdown document.
func MarkdownComparison(r benchmark.Report) string {
	s := r.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "# %s vs %s\n\n", s.BaselineEngine, s.CandidateEngine)
	fmt.Fprintf(&b, "- Baseline: `%s` (%s)\n", s.BaselineEngine, s.BaselineTimestamp)
	fmt.Fprintf(&b, "- Candidate: `%s` (%s)\n", s.CandidateEngine, s.CandidateTimestamp)
	fmt.Fprintf(&b, "- Scenarios compared: %d\n", s.Total)
	fmt.Fprintf(&b, "- Candidate faster: %d\n", s.CandidateFaster)
	fmt.Fprintf(&b, "- Baseline faster: %d\n", s.BaselineFaster)
	fmt.Fprintf(&b, "- Average speedup: %.2fx\n", s.AverageSpeedup)
	fmt.Fprintf(&b, "- Geometric mean speedup: %.2fx\n", s.GeometricMeanSpeedup)
	if len(s.OnlyInBaseline) > 0 {
		fmt.Fprintf(&b, "- Only in baseline: %s\n", strings.Join(s.OnlyInBaseline, ", "))
	}
	if len(s.OnlyInCandidate) > 0 {
		fmt.Fprintf(&b, "- Only in candidate: %s\n", strings.Join(s.OnlyInCandidate, ", "))
	}

	if len(r.Comparisons) == 0 {
		b.WriteString("\nNo common scenarios.\n")
		return b.String()
	}

	b.WriteString("\n## Scenarios\n\n")
	fmt.Fprintf(&b, "| Scenario | %s (ms) | %s (ms) | Speedup | Status |\n", s.BaselineEngine, s.CandidateEngine)
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, c := range r.Comparisons {
		fmt.Fprintf(&b, "| %s | %.6f | %.6f | %s | %s |\n",
			c.Name, c.Baseline.TimeMs, c.Candidate.TimeMs, formatSpeedup(c.Speedup), c.Status)
	}

	b.WriteString("\n## Largest speedups\n\n")
	for i, c := range r.Top(highlights) {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Name, formatSpeedup(c.Speedup))
	}

	b.WriteString("\n## Largest slowdowns\n\n")
	bottom := r.Bottom(highlights)
	for i := range bottom {
		c := bottom[len(bottom)-1-i]
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Name, formatSpeedup(c.Speedup))
	}

	return b.String()
}

// RenderComparison writes the report to w. When styled is set the markdown
// is rendered for a terminal with glamour; otherwise it is written as is.
func RenderComparison(w io.Writer, r benchmark.Report, styled bool) error {
	md := MarkdownComparison(r)
	if !styled {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		// Fallback to plain text
		out = md
	}
	_, err = io.WriteString(w, out)
	return err
}

// SummaryLine is a one-line coloured verdict for the report.
func SummaryLine(r benchmark.Report) string {
	s := r.Summary
	verdict := speedupStyle(s.GeometricMeanSpeedup).
		Render(fmt.Sprintf("%.2fx", s.GeometricMeanSpeedup))
	return fmt.Sprintf("%s %s %s over %s across %d scenarios (%d faster, %d slower)",
		titleStyle.Render("regexbench"),
		labelStyle.Render(s.CandidateEngine),
		verdict,
		s.BaselineEngine,
		s.Total,
		s.CandidateFaster,
		s.BaselineFaster,
	)
}
