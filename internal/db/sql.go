package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"regexbench/internal/benchmark"
)

// sqlStore implements Store over database/sql. The SQLite and Postgres
// stores differ only in schema and placeholder syntax.
type sqlStore struct {
	db *sql.DB
	// numbered switches ? placeholders to $1, $2, ...
	numbered bool
}

// rebind rewrites ? placeholders for drivers that use numbered ones.
func (s *sqlStore) rebind(query string) string {
	if !s.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *sqlStore) migrate(queries []string) error {
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}

// SaveRun stores rs and its measurements in one transaction.
func (s *sqlStore) SaveRun(ctx context.Context, rs benchmark.ResultSet) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		s.rebind(`INSERT INTO runs (engine, timestamp) VALUES (?, ?) RETURNING id`),
		rs.Engine, rs.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		s.rebind(`INSERT INTO measurements (run_id, scenario, time_ns, time_ms, iterations) VALUES (?, ?, ?, ?, ?)`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare measurement insert: %w", err)
	}
	defer stmt.Close()

	for _, name := range rs.Names() {
		m := rs.Results[name]
		if _, err := stmt.ExecContext(ctx, id, name, m.TimeNs, m.TimeMs, int64(m.Iterations)); err != nil {
			return 0, fmt.Errorf("failed to insert measurement %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListRuns retrieves the most recent runs.
func (s *sqlStore) ListRuns(ctx context.Context, engine string, limit int) ([]RunSummary, error) {
	query := `SELECT r.id, r.engine, r.timestamp, COUNT(m.scenario)
		FROM runs r LEFT JOIN measurements m ON m.run_id = r.id`
	var args []any
	if engine != "" {
		query += ` WHERE r.engine = ?`
		args = append(args, engine)
	}
	query += ` GROUP BY r.id, r.engine, r.timestamp ORDER BY r.id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Engine, &r.Timestamp, &r.Scenarios); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRun loads the newest run with its measurements.
func (s *sqlStore) LatestRun(ctx context.Context, engine string) (*Run, error) {
	runs, err := s.ListRuns(ctx, engine, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}
	run := &Run{
		RunSummary: runs[0],
		Results: benchmark.ResultSet{
			Engine:    runs[0].Engine,
			Timestamp: runs[0].Timestamp,
			Results:   make(map[string]benchmark.Measurement, runs[0].Scenarios),
		},
	}

	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT scenario, time_ns, iterations FROM measurements WHERE run_id = ?`),
		run.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			ns    float64
			iters int64
		)
		if err := rows.Scan(&name, &ns, &iters); err != nil {
			return nil, err
		}
		run.Results.Results[name] = benchmark.NewMeasurement(ns, uint64(iters))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}
