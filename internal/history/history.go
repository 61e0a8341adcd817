// Package history archives finished and interrupted pomodoro runs in a
// local SQLite database, one row per run.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one archived pomodoro run. Completed is true when the run's
// full span had elapsed by the time it was stopped or replaced.
type Run struct {
	ID          string
	Definition  string
	Repetitions int
	Work        time.Duration
	Break       time.Duration
	StartedAt   time.Time
	EndedAt     time.Time
	TotalPaused time.Duration
	Completed   bool
}

// Store is a SQLite-backed archive of past runs.
// Use ":memory:" for an in-memory archive, or a file path for
// persistent storage.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens the archive at dbPath, creating parent directories and the
// schema as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		definition TEXT NOT NULL,
		repetitions INTEGER NOT NULL,
		work_seconds INTEGER NOT NULL,
		break_seconds INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		ended_at INTEGER NOT NULL,
		paused_seconds INTEGER NOT NULL,
		completed INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record archives one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, definition, repetitions, work_seconds, break_seconds, started_at, ended_at, paused_seconds, completed) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Definition, run.Repetitions,
		int64(run.Work/time.Second), int64(run.Break/time.Second),
		run.StartedAt.Unix(), run.EndedAt.Unix(),
		int64(run.TotalPaused/time.Second), run.Completed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	return nil
}

// Recent returns the latest runs, newest first, at most limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, definition, repetitions, work_seconds, break_seconds, started_at, ended_at, paused_seconds, completed FROM runs ORDER BY started_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			run                  Run
			workSec, breakSec    int64
			startedAt, endedAt   int64
			pausedSec, completed int64
		)
		if err := rows.Scan(&run.ID, &run.Definition, &run.Repetitions,
			&workSec, &breakSec, &startedAt, &endedAt, &pausedSec, &completed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Work = time.Duration(workSec) * time.Second
		run.Break = time.Duration(breakSec) * time.Second
		run.StartedAt = time.Unix(startedAt, 0)
		run.EndedAt = time.Unix(endedAt, 0)
		run.TotalPaused = time.Duration(pausedSec) * time.Second
		run.Completed = completed != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
