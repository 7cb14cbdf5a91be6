// Package history persists which digest items have already been reported, so
// repeated runs can skip them.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS seen_items (
	key        TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	title      TEXT NOT NULL,
	first_seen TEXT NOT NULL
);`

// Store is a SQLite-backed record of items already included in a digest.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the seen-item database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Seen reports whether key was already recorded.
func (s *Store) Seen(key string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM seen_items WHERE key = ?`, key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Mark records key as reported. Re-marking an existing key is a no-op.
func (s *Store) Mark(key, source, title string, now time.Time) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO seen_items (key, source, title, first_seen) VALUES (?, ?, ?, ?)`,
		key, source, title, now.Format(time.RFC3339),
	)
	return err
}
