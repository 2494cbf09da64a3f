// Package sqlite implements the storage.Storage interface on an embedded
// SQLite database.
//
// WHY SQLITE FOR A KEY/VALUE BLOB STORE?
// The persistence model is two JSON blobs under two fixed keys — a flat file
// would almost do, but SQLite gives us atomic replacement of a value (no
// torn writes if the process dies mid-save) and a single database file that is
// easy to back up. The schema is one table:
//
//	kv(key TEXT PRIMARY KEY, value BLOB)
//
// WHY modernc.org/sqlite?
// It is a pure-Go translation of SQLite — no CGo, no C compiler, trivial
// cross-compilation. The driver registers itself under the name "sqlite" via
// the blank import below.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sakif/codepocket/internal/storage"
)

// Store wraps a sql.DB connection pool and implements storage.Storage.
type Store struct {
	conn *sql.DB
}

var _ storage.Storage = (*Store)(nil)

// New opens (or creates) the database at path and prepares the kv table.
// Use ":memory:" for an in-memory database in tests.
func New(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping forces an immediate connection so a bad path or permissions
	// problem surfaces here rather than on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}
	return s, nil
}

// migrate creates the kv table. CREATE TABLE IF NOT EXISTS makes this safe to
// run on every startup.
func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// GetItem returns the blob stored under key, or storage.ErrNoItem.
func (s *Store) GetItem(key string) ([]byte, error) {
	var value []byte
	err := s.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		// sql.ErrNoRows means the key was never written — translate it to
		// the domain sentinel so callers don't import database/sql.
		if err == sql.ErrNoRows {
			return nil, storage.ErrNoItem
		}
		return nil, fmt.Errorf("sqlite: getting item %s: %w", key, err)
	}
	return value, nil
}

// SetItem stores value under key, replacing any previous value. The upsert is
// a single statement, so the old blob is never observable half-replaced.
func (s *Store) SetItem(key string, value []byte) error {
	_, err := s.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite: setting item %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the key. Deleting an absent key is not an error.
func (s *Store) RemoveItem(key string) error {
	if _, err := s.conn.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: removing item %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool, flushing the WAL.
func (s *Store) Close() error {
	return s.conn.Close()
}
