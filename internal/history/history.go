// Package history keeps a local record of install and uninstall runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const DefaultDBPath = "/var/db/securemacos/history.sqlite"

type DB struct {
	*sql.DB
}

type Entry struct {
	ID        string
	Action    string
	Succeeded bool
	CreatedAt time.Time
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	wrapper := &DB{DB: db}

	if err := wrapper.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return wrapper, nil
}

func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS operations (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		succeeded INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("creating operations table: %w", err)
	}

	return nil
}

// Record stores one completed operation.
func (db *DB) Record(action string, succeeded bool) error {
	query := `INSERT INTO operations (id, action, succeeded, created_at) VALUES (?, ?, ?, ?)`

	_, err := db.Exec(query, uuid.NewString(), action, succeeded, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording operation: %w", err)
	}

	return nil
}

// List returns the most recent operations, newest first.
func (db *DB) List(limit int) ([]Entry, error) {
	query := `SELECT id, action, succeeded, created_at FROM operations ORDER BY created_at DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying operations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Succeeded, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing operation timestamp: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
