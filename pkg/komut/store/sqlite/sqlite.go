package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
)

// sqliteStore implements store.EventStore using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// events table when missing.
func OpenSQLite(ctx context.Context, path string) (store.EventStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist. Times are unix
// nanoseconds so range scans compare numerically.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	at INTEGER NOT NULL,
	intent TEXT NOT NULL,
	confidence REAL NOT NULL,
	success INTEGER NOT NULL,
	response_ns INTEGER NOT NULL,
	feedback TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *sqliteStore) Append(ctx context.Context, ev store.Event) error {
	if ev.ID == "" {
		return fmt.Errorf("append event: %w: empty id", internalerr.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO events(id, at, intent, confidence, success, response_ns, feedback)
VALUES(?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.At.UnixNano(), ev.Intent, ev.Confidence, boolToInt(ev.Success),
		int64(ev.ResponseTime), string(ev.Feedback))
	if err != nil {
		return fmt.Errorf("append event %s: %w", ev.ID, err)
	}
	return nil
}

func (s *sqliteStore) List(ctx context.Context, since time.Time, limit int) ([]store.Event, error) {
	query := `
SELECT id, at, intent, confidence, success, response_ns, feedback
FROM events
WHERE at >= ?
ORDER BY at, id`
	args := []any{int64(0)}
	if !since.IsZero() {
		args[0] = since.UnixNano()
	}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]store.Event, 0)
	for rows.Next() {
		var (
			ev         store.Event
			at, respNS int64
			success    int
			feedback   string
		)
		if err := rows.Scan(&ev.ID, &at, &ev.Intent, &ev.Confidence, &success, &respNS, &feedback); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.At = time.Unix(0, at).UTC()
		ev.Success = success != 0
		ev.ResponseTime = time.Duration(respNS)
		ev.Feedback = store.Feedback(feedback)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *sqliteStore) SetFeedback(ctx context.Context, id string, fb store.Feedback) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET feedback = ? WHERE id = ?`, string(fb), id)
	if err != nil {
		return fmt.Errorf("set feedback %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set feedback %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", id, internalerr.ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
