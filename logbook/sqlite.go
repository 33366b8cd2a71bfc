package logbook

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/samskrita/samvada/model"
)

// Store is durable append-only storage for log entries.
type Store interface {
	Append(ctx context.Context, entry model.LogEntry) error
	History(ctx context.Context, sessionID string) ([]model.LogEntry, error)
	Recent(ctx context.Context, limit int) ([]model.LogEntry, error)
	Close() error
}

// SqliteStore implements Store using SQLite.
// Thread-safe: sql.DB handles connection pooling and concurrent access.
type SqliteStore struct {
	db *sql.DB
}

var _ Store = (*SqliteStore)(nil)

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// NewSqliteInMemory creates an in-memory store (useful for testing).
func NewSqliteInMemory() (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS log_entries (
			id TEXT PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			from_agent TEXT NOT NULL,
			to_agent TEXT NOT NULL,
			content TEXT NOT NULL,
			language TEXT NOT NULL,
			translated TEXT,
			kind TEXT NOT NULL,
			session_id TEXT,
			success INTEGER NOT NULL,
			response_time_ms INTEGER,
			metadata TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_log_entries_session
		ON log_entries(session_id, timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append persists one entry. Entry metadata is serialized as JSON.
func (s *SqliteStore) Append(ctx context.Context, entry model.LogEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to serialize entry metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO log_entries
			(id, timestamp, from_agent, to_agent, content, language,
			 translated, kind, session_id, success, response_time_ms, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp.UnixMilli(), entry.FromAgent, entry.ToAgent,
		entry.Message.Content, string(entry.Message.Language),
		entry.Translated, string(entry.Kind), entry.SessionID,
		boolToInt(entry.Success), entry.ResponseTimeMs, string(metadata))
	if err != nil {
		return fmt.Errorf("failed to insert log entry: %w", err)
	}
	return nil
}

// History returns a session's entries ordered by timestamp.
func (s *SqliteStore) History(ctx context.Context, sessionID string) ([]model.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, from_agent, to_agent, content, language,
		       translated, kind, session_id, success, response_time_ms, metadata
		FROM log_entries
		WHERE session_id = ?
		ORDER BY timestamp, id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Recent returns the newest entries, oldest first.
func (s *SqliteStore) Recent(ctx context.Context, limit int) ([]model.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, from_agent, to_agent, content, language,
		       translated, kind, session_id, success, response_time_ms, metadata
		FROM (
			SELECT * FROM log_entries ORDER BY timestamp DESC, id DESC LIMIT ?
		)
		ORDER BY timestamp, id`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	for rows.Next() {
		var (
			entry      model.LogEntry
			tsMillis   int64
			language   string
			kind       string
			translated sql.NullString
			sessionID  sql.NullString
			success    int
			respTime   sql.NullInt64
			metadata   sql.NullString
		)
		if err := rows.Scan(&entry.ID, &tsMillis, &entry.FromAgent, &entry.ToAgent,
			&entry.Message.Content, &language, &translated, &kind,
			&sessionID, &success, &respTime, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}

		entry.Timestamp = time.UnixMilli(tsMillis)
		entry.Message.ID = entry.ID
		entry.Message.Timestamp = entry.Timestamp
		entry.Message.Language = model.Language(language)
		entry.Translated = translated.String
		entry.Kind = model.CommunicationKind(kind)
		entry.SessionID = sessionID.String
		entry.Success = success != 0
		entry.ResponseTimeMs = respTime.Int64
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse entry metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading log entries: %w", err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
