package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Ratio is a speedup factor. Infinite or NaN ratios encode as JSON null.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}

// Comparison pairs one scenario's baseline and candidate measurements.
type Comparison struct {
	Name      string      `json:"name"`
	Baseline  Measurement `json:"baseline"`
	Candidate Measurement `json:"candidate"`
	Speedup   Ratio       `json:"speedup"` // >1 means the candidate is faster
	Status    string      `json:"status"`
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %.2fx", c.Name, float64(c.Speedup))
}

type Summary struct {
	BaselineEngine       string   `json:"baseline_engine"`
	CandidateEngine      string   `json:"candidate_engine"`
	BaselineTimestamp    string   `json:"baseline_timestamp"`
	CandidateTimestamp   string   `json:"candidate_timestamp"`
	Total                int      `json:"total_benchmarks"`
	CandidateFaster      int      `json:"candidate_faster_count"`
	BaselineFaster       int      `json:"baseline_faster_count"`
	AverageSpeedup       float64  `json:"average_speedup"`
	GeometricMeanSpeedup float64  `json:"geometric_mean_speedup"`
	OnlyInBaseline       []string `json:"only_in_baseline,omitempty"`
	OnlyInCandidate      []string `json:"only_in_candidate,omitempty"`
}

// Report is the outcome of comparing two result sets.
type Report struct {
	Summary     Summary      `json:"summary"`
	Comparisons []Comparison `json:"benchmarks"`
}

// Speedup returns how many times faster the candidate is than the baseline.
func Speedup(baselineMs, candidateMs float64) float64 {
	if candidateMs == 0 {
		return math.Inf(1)
	}
	return baselineMs / candidateMs
}

// Status buckets a speedup factor into a short label.
func Status(speedup float64) string {
	switch {
	case speedup > 10:
		return "much faster"
	case speedup > 2:
		return "faster"
	case speedup > 1.1:
		return "slightly faster"
	case speedup > 0.9:
		return "similar"
	case speedup > 0.5:
		return "slightly slower"
	default:
		return "slower"
	}
}

// Compare compares the scenarios present in both result sets. Comparisons are
// sorted by name; infinite speedups count toward the faster/slower tallies
// but are left out of the averages.
func Compare(baseline, candidate ResultSet) Report {
	report := Report{
		Summary: Summary{
			BaselineEngine:       baseline.Engine,
			CandidateEngine:      candidate.Engine,
			BaselineTimestamp:    baseline.Timestamp,
			CandidateTimestamp:   candidate.Timestamp,
			GeometricMeanSpeedup: 1.0,
		},
	}

	var sum, logSum float64
	var finite int
	for _, name := range baseline.Names() {
		b := baseline.Results[name]
		c, ok := candidate.Results[name]
		if !ok {
			report.Summary.OnlyInBaseline = append(report.Summary.OnlyInBaseline, name)
			continue
		}

		s := Speedup(b.TimeMs, c.TimeMs)
		report.Comparisons = append(report.Comparisons, Comparison{
			Name:      name,
			Baseline:  b,
			Candidate: c,
			Speedup:   Ratio(s),
			Status:    Status(s),
		})

		if s > 1 {
			report.Summary.CandidateFaster++
		} else if s < 1 {
			report.Summary.BaselineFaster++
		}
		if !math.IsInf(s, 0) && !math.IsNaN(s) && s > 0 {
			sum += s
			logSum += math.Log(s)
			finite++
		}
	}
	for _, name := range candidate.Names() {
		if _, ok := baseline.Results[name]; !ok {
			report.Summary.OnlyInCandidate = append(report.Summary.OnlyInCandidate, name)
		}
	}

	report.Summary.Total = len(report.Comparisons)
	if finite > 0 {
		report.Summary.AverageSpeedup = sum / float64(finite)
		report.Summary.GeometricMeanSpeedup = math.Exp(logSum / float64(finite))
	}
	return report
}

// Top returns up to n comparisons with the highest speedup.
func (r Report) Top(n int) []Comparison {
	ranked := r.ranked()
	return ranked[:min(n, len(ranked))]
}

// Bottom returns up to n comparisons with the lowest speedup, lowest last.
func (r Report) Bottom(n int) []Comparison {
	ranked := r.ranked()
	return ranked[len(ranked)-min(n, len(ranked)):]
}

func (r Report) ranked() []Comparison {
	ranked := make([]Comparison, len(r.Comparisons))
	copy(ranked, r.Comparisons)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Speedup > ranked[j].Speedup
	})
	return ranked
}
