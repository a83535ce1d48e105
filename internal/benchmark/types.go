package benchmark

import "sort"

const nsPerMs = 1_000_000

// Measurement is the timing of one scenario.
//
// Iterations counts logical operations: timer passes multiplied by the
// scenario's inner iteration count once the measurement is normalized.
type Measurement struct {
	TimeNs     float64 `json:"time_ns"`
	TimeMs     float64 `json:"time_ms"`
	Iterations uint64  `json:"iterations"`
}

// NewMeasurement derives TimeMs from timeNs so TimeMs == TimeNs/1e6 holds exactly.
func NewMeasurement(timeNs float64, iterations uint64) Measurement {
	return Measurement{
		TimeNs:     timeNs,
		TimeMs:     timeNs / nsPerMs,
		Iterations: iterations,
	}
}

// FromMillis builds a Measurement from a millisecond reading.
func FromMillis(timeMs float64, iterations uint64) Measurement {
	return NewMeasurement(timeMs*nsPerMs, iterations)
}

// Normalize converts a per-pass measurement into a per-operation one when each
// timed pass ran inner operations. TimeMs is re-derived from the divided TimeNs
// rather than divided itself, keeping the ns/ms relation exact.
func (m Measurement) Normalize(inner uint64) Measurement {
	if inner <= 1 {
		return m
	}
	return NewMeasurement(m.TimeNs/float64(inner), m.Iterations*inner)
}

// ResultSet is the exchange document written once per engine.
type ResultSet struct {
	Engine    string                 `json:"engine"`
	Timestamp string                 `json:"timestamp"`
	Results   map[string]Measurement `json:"results"`
}

// Names returns the scenario names in lexicographic order.
func (rs ResultSet) Names() []string {
	return sortedNames(rs.Results)
}

func sortedNames(results map[string]Measurement) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
