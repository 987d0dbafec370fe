// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists rewrite run history in a SQLite database so
// earlier migrations of a documentation tree stay inspectable.
// Implements: prd005-history (R1-R3);
//
//	docs/ARCHITECTURE § Run History.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/callout-bridge/pkg/types"
)

const dbFile = "history.db"

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at
// historyDir/history.db, creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			root TEXT NOT NULL,
			dry_run INTEGER NOT NULL,
			scanned INTEGER NOT NULL,
			changed INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			path TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary is one row of run history.
type RunSummary struct {
	ID        int64
	StartedAt time.Time
	Root      string
	DryRun    bool
	Scanned   int
	Changed   int
	Failed    int
}

// Record persists a run report and its per-file outcomes in one
// transaction, returning the new run's id.
func (s *Store) Record(ctx context.Context, report types.RunReport) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, root, dry_run, scanned, changed, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.StartedAt.UTC().Format(time.RFC3339Nano),
		report.Root,
		report.DryRun,
		report.Scanned(),
		report.Changed(),
		report.Failed(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, f := range report.Files {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, status, error) VALUES (?, ?, ?, ?)`,
			runID, f.Path, string(f.Status), f.Err,
		); err != nil {
			return 0, fmt.Errorf("inserting file result for %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the most recent runs, newest first. A limit of zero or
// less falls back to the store's configured maximum.
func (s *Store) Recent(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, root, dry_run, scanned, changed, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			r       RunSummary
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.Root, &r.DryRun, &r.Scanned, &r.Changed, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", started, err)
		}
		r.StartedAt = ts
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Files returns the per-file outcomes recorded for a run.
func (s *Store) Files(ctx context.Context, runID int64) ([]types.FileResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, status, error FROM run_files WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	var files []types.FileResult
	for rows.Next() {
		var (
			f      types.FileResult
			status string
		)
		if err := rows.Scan(&f.Path, &status, &f.Err); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		f.Status = types.FileStatus(status)
		files = append(files, f)
	}
	return files, rows.Err()
}
