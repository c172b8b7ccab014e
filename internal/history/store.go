package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Statuses recorded per request.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one request-history row.
type Record struct {
	ID              string
	VideoID         string
	Language        string
	Mode            string
	Status          string
	ErrorKind       string
	CueCount        int
	DurationSeconds float64
	Degraded        bool
	Elapsed         time.Duration
	CreatedAt       time.Time
}

// Store manages request-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add inserts one record, assigning an id and timestamp when absent.
func (s *Store) Add(ctx context.Context, record Record) (Record, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO requests (id, video_id, language, mode, status, error_kind, cue_count, duration_seconds, degraded, elapsed_ms, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.VideoID, record.Language, record.Mode, record.Status,
		record.ErrorKind, record.CueCount, record.DurationSeconds,
		boolToInt(record.Degraded), record.Elapsed.Milliseconds(),
		record.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Record{}, fmt.Errorf("insert history record: %w", err)
	}
	return record, nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, video_id, language, mode, status, error_kind, cue_count, duration_seconds, degraded, elapsed_ms, created_at
FROM requests
ORDER BY created_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record    Record
			degraded  int
			elapsedMS int64
			createdAt string
		)
		if err := rows.Scan(&record.ID, &record.VideoID, &record.Language, &record.Mode,
			&record.Status, &record.ErrorKind, &record.CueCount, &record.DurationSeconds,
			&degraded, &elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		record.Degraded = degraded != 0
		record.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			record.CreatedAt = parsed
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
