// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records the searches the API server has answered in a
// local SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultRecent = 20

// Entry is one served search.
type Entry struct {
	// ID is the request identifier assigned by the server.
	ID            string        `json:"id" yaml:"id"`
	Topic         string        `json:"topic" yaml:"topic"`
	ResourceTypes []string      `json:"resource_types,omitempty" yaml:"resource_types,omitempty"`
	ResultCount   int           `json:"result_count" yaml:"result_count"`
	Error         string        `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed       time.Duration `json:"elapsed" yaml:"elapsed"`
	CreatedAt     time.Time     `json:"created_at" yaml:"created_at"`
}

// Store manages the history database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and creates the schema
// if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS searches (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			topic TEXT NOT NULL,
			resource_types TEXT,
			result_count INTEGER NOT NULL,
			error TEXT,
			elapsed_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("history entry has no id")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	typesJSON, err := json.Marshal(e.ResourceTypes)
	if err != nil {
		return fmt.Errorf("encoding resource types: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches (id, topic, resource_types, result_count, error, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Topic, string(typesJSON), e.ResultCount, e.Error,
		e.Elapsed.Milliseconds(), e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording search %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of zero or less
// uses the default (20).
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultRecent
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, resource_types, result_count, error, elapsed_ms, created_at
		FROM searches ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			typesJSON sql.NullString
			errText   sql.NullString
			elapsedMS int64
			created   string
		)
		if err := rows.Scan(&e.ID, &e.Topic, &typesJSON, &e.ResultCount, &errText, &elapsedMS, &created); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if typesJSON.Valid && typesJSON.String != "" {
			if err := json.Unmarshal([]byte(typesJSON.String), &e.ResourceTypes); err != nil {
				return nil, fmt.Errorf("decoding resource types for %s: %w", e.ID, err)
			}
		}
		e.Error = errText.String
		e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
