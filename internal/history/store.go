// Package history keeps past verification runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

// Run is one stored verification run.
type Run struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Pages     int
	Outcome   string
	Errors    int
	Warnings  int
}

// Store implements run history using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and creates) the database at path. Use ":memory:" for an
// in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "open sqlite database").
			WithContext("path", path).
			Build()
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, errors.WrapError(err, errors.CategoryStore, "initialize history schema").
			WithContext("path", path).
			Build()
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		errors INTEGER NOT NULL,
		warnings INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS issues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		rule TEXT NOT NULL,
		severity TEXT NOT NULL,
		route TEXT,
		target TEXT,
		message TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_issues_run_id ON issues(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a report and its issues in one transaction.
func (s *Store) Save(ctx context.Context, r *verify.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapError(err, errors.CategoryStore, "begin transaction").Build()
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, duration_ms, pages, outcome, errors, warnings) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.RunID, r.StartedAt.UnixMilli(), r.Duration.Milliseconds(), r.Pages, string(r.Outcome()), r.ErrorCount(), r.WarningCount(),
	)
	if err != nil {
		return errors.WrapError(err, errors.CategoryStore, "insert run").WithContext("run_id", r.RunID).Build()
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO issues (run_id, rule, severity, route, target, message) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.WrapError(err, errors.CategoryStore, "prepare issue insert").Build()
	}
	defer stmt.Close()
	for _, is := range r.Issues {
		if _, err := stmt.ExecContext(ctx, r.RunID, is.Rule, string(is.Severity), is.Route, is.Target, is.Message); err != nil {
			return errors.WrapError(err, errors.CategoryStore, "insert issue").WithContext("run_id", r.RunID).Build()
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapError(err, errors.CategoryStore, "commit run").WithContext("run_id", r.RunID).Build()
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, duration_ms, pages, outcome, errors, warnings FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "query runs").Build()
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run              Run
			startedMS, durMS int64
		)
		if err := rows.Scan(&run.ID, &startedMS, &durMS, &run.Pages, &run.Outcome, &run.Errors, &run.Warnings); err != nil {
			return nil, errors.WrapError(err, errors.CategoryStore, "scan run").Build()
		}
		run.StartedAt = time.UnixMilli(startedMS).UTC()
		run.Duration = time.Duration(durMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "iterate runs").Build()
	}
	return runs, nil
}

// Issues returns the issues stored for runID in their original order.
func (s *Store) Issues(ctx context.Context, runID string) ([]verify.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT rule, severity, COALESCE(route, ''), COALESCE(target, ''), message FROM issues WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "query issues").Build()
	}
	defer rows.Close()

	var out []verify.Issue
	for rows.Next() {
		var (
			is  verify.Issue
			sev string
		)
		if err := rows.Scan(&is.Rule, &sev, &is.Route, &is.Target, &is.Message); err != nil {
			return nil, errors.WrapError(err, errors.CategoryStore, "scan issue").Build()
		}
		is.Severity = verify.Severity(sev)
		out = append(out, is)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "iterate issues").Build()
	}
	return out, nil
}
