package bench

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrStoreClosed is returned by Store methods after Close.
var ErrStoreClosed = errors.New("bench: store closed")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  INTEGER NOT NULL,
	source      TEXT    NOT NULL,
	field       TEXT    NOT NULL,
	input       INTEGER NOT NULL,
	algorithm   TEXT    NOT NULL,
	records     INTEGER NOT NULL,
	dropped     INTEGER NOT NULL,
	comparisons INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_started_at ON runs (started_at);`

// Run is one persisted Entry together with the report it came from.
type Run struct {
	ID        int64
	StartedAt time.Time
	Source    string
	Field     string
	Input     int
	Entry
}

// Store keeps run history in a SQLite file.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenStore opens (creating if needed) the history database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bench: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bench: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save appends every entry of rep in one transaction.
func (s *Store) Save(ctx context.Context, rep *Report) error {
	if rep == nil || len(rep.Entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO runs
		(started_at, source, field, input, algorithm, records, dropped, comparisons, moves, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	started := rep.StartedAt.UnixNano()
	for _, e := range rep.Entries {
		if _, err := stmt.ExecContext(ctx, started, rep.Source, rep.Field, rep.Input,
			e.Algorithm, e.Records, e.Dropped, e.Comparisons, e.Moves, int64(e.Elapsed)); err != nil {
			tx.Rollback()
			return fmt.Errorf("bench: save %s: %w", e.Algorithm, err)
		}
	}
	return tx.Commit()
}

// Recent returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, started_at, source, field, input, algorithm, records, dropped, comparisons, moves, elapsed_ns
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			started int64
			elapsed int64
		)
		if err := rows.Scan(&r.ID, &started, &r.Source, &r.Field, &r.Input,
			&r.Algorithm, &r.Records, &r.Dropped, &r.Comparisons, &r.Moves, &elapsed); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(0, started)
		r.Elapsed = time.Duration(elapsed)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database. Further calls return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
