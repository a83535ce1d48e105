package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	sqlStore
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{sqlStore{db: db, numbered: true}}
	if err := store.migrate(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id BIGSERIAL PRIMARY KEY,
		engine TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS measurements (
		run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		scenario TEXT NOT NULL,
		time_ns DOUBLE PRECISION NOT NULL,
		time_ms DOUBLE PRECISION NOT NULL,
		iterations BIGINT NOT NULL,
		PRIMARY KEY (run_id, scenario)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_engine ON runs(engine);`,
}
