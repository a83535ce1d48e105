package benchmark

import (
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultSet(engine string, ms map[string]float64) ResultSet {
	rs := ResultSet{Engine: engine, Timestamp: "2025-01-01T00:00:00Z", Results: map[string]Measurement{}}
	for name, v := range ms {
		rs.Results[name] = FromMillis(v, 100)
	}
	return rs
}

func TestCompare(t *testing.T) {
	baseline := resultSet("pcre", map[string]float64{
		"B1": 1.0,
		"B2": 2.0,
		"B3": 0.5,
	})
	candidate := resultSet("go", map[string]float64{
		"B1": 0.5, // 2x faster
		"B2": 8.0, // 4x slower
		"B4": 1.0, // new
	})

	r := Compare(baseline, candidate)

	require.Len(t, r.Comparisons, 2)
	assert.Equal(t, "B1", r.Comparisons[0].Name)
	assert.InDelta(t, 2.0, float64(r.Comparisons[0].Speedup), 1e-9)
	assert.Equal(t, "slightly faster", r.Comparisons[0].Status)
	assert.InDelta(t, 0.25, float64(r.Comparisons[1].Speedup), 1e-9)
	assert.Equal(t, "slower", r.Comparisons[1].Status)

	s := r.Summary
	assert.Equal(t, "pcre", s.BaselineEngine)
	assert.Equal(t, "go", s.CandidateEngine)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.CandidateFaster)
	assert.Equal(t, 1, s.BaselineFaster)
	assert.InDelta(t, 1.125, s.AverageSpeedup, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), s.GeometricMeanSpeedup, 1e-9)
	assert.Equal(t, []string{"B3"}, s.OnlyInBaseline)
	assert.Equal(t, []string{"B4"}, s.OnlyInCandidate)
}

func TestCompare_InfiniteSpeedup(t *testing.T) {
	baseline := resultSet("a", map[string]float64{"fast": 1.0, "x": 2.0})
	candidate := resultSet("b", map[string]float64{"fast": 0, "x": 1.0})

	r := Compare(baseline, candidate)
	require.Len(t, r.Comparisons, 2)
	assert.True(t, math.IsInf(float64(r.Comparisons[0].Speedup), 1))
	assert.Equal(t, 2, r.Summary.CandidateFaster)
	assert.InDelta(t, 2.0, r.Summary.AverageSpeedup, 1e-9)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"speedup":null`)

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, math.IsInf(float64(back.Comparisons[0].Speedup), 1))
}

func TestCompare_NoOverlap(t *testing.T) {
	r := Compare(resultSet("a", map[string]float64{"x": 1}), resultSet("b", map[string]float64{"y": 1}))
	assert.Empty(t, r.Comparisons)
	assert.Equal(t, 0.0, r.Summary.AverageSpeedup)
	assert.Equal(t, 1.0, r.Summary.GeometricMeanSpeedup)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "much faster", Status(11))
	assert.Equal(t, "faster", Status(3))
	assert.Equal(t, "slightly faster", Status(1.5))
	assert.Equal(t, "similar", Status(1.0))
	assert.Equal(t, "slightly slower", Status(0.6))
	assert.Equal(t, "slower", Status(0.1))
	assert.Equal(t, "much faster", Status(math.Inf(1)))
}

func TestReport_TopBottom(t *testing.T) {
	r := Compare(
		resultSet("a", map[string]float64{"s1": 1, "s2": 1, "s3": 1, "s4": 1}),
		resultSet("b", map[string]float64{"s1": 0.5, "s2": 2, "s3": 0.1, "s4": 1}),
	)

	top := r.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "s3", top[0].Name)
	assert.Equal(t, "s1", top[1].Name)

	bottom := r.Bottom(2)
	require.Len(t, bottom, 2)
	assert.Equal(t, "s4", bottom[0].Name)
	assert.Equal(t, "s2", bottom[1].Name)

	assert.Len(t, r.Top(10), 4)
	assert.Len(t, r.Bottom(10), 4)
	assert.Equal(t, "s3: 10.00x", top[0].String())
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "comparison.json")
	r := Compare(resultSet("a", map[string]float64{"x": 1}), resultSet("b", map[string]float64{"x": 0.5}))
	require.NoError(t, WriteReport(path, r))
}
