package benchmark

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"time"
)

// ErrDuplicateScenario is returned when a scenario name is inserted twice.
var ErrDuplicateScenario = errors.New("duplicate scenario name")

// ResultStore accumulates the measurements of a single run.
// It is not safe for concurrent use.
type ResultStore struct {
	results map[string]Measurement
	now     func() time.Time
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]Measurement),
		now:     time.Now,
	}
}

// Insert records a measurement. A name that is already present is rejected
// and the stored measurement is left untouched.
func (s *ResultStore) Insert(name string, m Measurement) error {
	if _, ok := s.results[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, name)
	}
	s.results[name] = m
	return nil
}

func (s *ResultStore) Get(name string) (Measurement, bool) {
	m, ok := s.results[name]
	return m, ok
}

func (s *ResultStore) Len() int {
	return len(s.results)
}

// Names returns the inserted names in lexicographic order.
func (s *ResultStore) Names() []string {
	return sortedNames(s.results)
}

// Render returns the results table.
func (s *ResultStore) Render() string {
	var b strings.Builder
	_ = RenderTable(&b, s.results)
	return b.String()
}

// ToExchangeFormat snapshots the store into a ResultSet stamped with the
// current UTC time.
func (s *ResultStore) ToExchangeFormat(engine string) ResultSet {
	return ResultSet{
		Engine:    engine,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Results:   maps.Clone(s.results),
	}
}

// RenderTable writes a fixed-column table sorted by scenario name.
func RenderTable(w io.Writer, results map[string]Measurement) error {
	if _, err := fmt.Fprintln(w, "| name                      | met (ms)              | iters  |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "|---------------------------|-----------------------|--------|"); err != nil {
		return err
	}
	for _, name := range sortedNames(results) {
		m := results[name]
		if _, err := fmt.Fprintf(w, "| %-25s | %21.17f | %6d |\n", name, m.TimeMs, m.Iterations); err != nil {
			return err
		}
	}
	return nil
}
