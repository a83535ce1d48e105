package db

import (
	"context"
	"errors"

	"regexbench/internal/benchmark"
)

// ErrNoRuns is returned when no run matches a lookup.
var ErrNoRuns = errors.New("no runs recorded")

// Store persists the result sets of past runs.
type Store interface {
	Close() error
	// SaveRun appends rs to the history and returns its run ID.
	SaveRun(ctx context.Context, rs benchmark.ResultSet) (int64, error)
	// LatestRun returns the most recent run for engine, or for any engine
	// when engine is empty.
	LatestRun(ctx context.Context, engine string) (*Run, error)
	// ListRuns lists runs newest first. A non-positive limit lists all.
	ListRuns(ctx context.Context, engine string, limit int) ([]RunSummary, error)
}

// RunSummary describes a stored run without its measurements.
type RunSummary struct {
	ID        int64  `json:"id"`
	Engine    string `json:"engine"`
	Timestamp string `json:"timestamp"`
	Scenarios int    `json:"scenarios"`
}

// Run is a stored run with its full result set.
type Run struct {
	RunSummary
	Results benchmark.ResultSet `json:"results"`
}
