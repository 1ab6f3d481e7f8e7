// Package history persists identification records. Records are stored
// as JSON documents in SQLite, newest first, and the collection is
// capped: once MaxRecords is reached the oldest record is evicted to
// make room for a new one.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"verdant/internal/logging"
	"verdant/internal/types"
)

// MaxRecords bounds the history. Eviction is oldest-first.
const MaxRecords = 50

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("history: record not found")

// Store is the on-disk history. Safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// Open initializes the database at path, creating directories and the
// schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	s := &Store{db: db, path: path, log: logging.Named(logging.CategoryStore)}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		s.log.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := s.db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		s.log.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}
	if _, err := s.db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		s.log.Debug("failed to set sqlite synchronous=NORMAL", zap.Error(err))
	}

	schema := `
	CREATE TABLE IF NOT EXISTS identifications (
		id TEXT PRIMARY KEY,
		captured_at INTEGER NOT NULL,
		record TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_identifications_captured_at
		ON identifications(captured_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("history: create schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns every stored record, newest first. A record whose JSON
// no longer parses is skipped and logged rather than poisoning the
// whole history; at worst the caller sees an empty slate.
func (s *Store) Load(ctx context.Context) ([]types.Identification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, record FROM identifications ORDER BY captured_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("history: load: %w", err)
	}
	defer rows.Close()

	records := make([]types.Identification, 0, MaxRecords)
	for rows.Next() {
		var id, blob string
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		var rec types.Identification
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			s.log.Warn("skipping corrupt history record",
				zap.String("id", id), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns a single record by ID.
func (s *Store) Get(ctx context.Context, id string) (*types.Identification, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM identifications WHERE id = ?`, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get %s: %w", id, err)
	}
	var rec types.Identification
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return nil, fmt.Errorf("history: record %s is corrupt: %w", id, err)
	}
	return &rec, nil
}

// Append stores a new record and evicts the oldest entries beyond
// MaxRecords. Insert and trim run in one transaction so a concurrent
// reader never sees an over-full history.
func (s *Store) Append(ctx context.Context, rec *types.Identification) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO identifications (id, captured_at, record) VALUES (?, ?, ?)`,
		rec.ID, rec.CapturedAt, string(blob)); err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM identifications WHERE id NOT IN (
			SELECT id FROM identifications
			ORDER BY captured_at DESC, rowid DESC LIMIT ?
		)`, MaxRecords); err != nil {
		return fmt.Errorf("history: trim: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}

	s.log.Debug("appended record",
		zap.String("id", rec.ID), zap.String("name", rec.DisplayName()))
	return nil
}

// Replace overwrites an existing record in place, keeping its position
// in the history. Augmenters use this to commit appended chat turns,
// timeline updates and tool results as whole-record writes.
func (s *Store) Replace(ctx context.Context, rec *types.Identification) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE identifications SET record = ? WHERE id = ?`, string(blob), rec.ID)
	if err != nil {
		return fmt.Errorf("history: replace %s: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("history: replace %s: %w", rec.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM identifications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("history: delete %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM identifications`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}
