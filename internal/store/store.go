// Package store implements the Local Record Store: a key-value mapping from
// fixed string keys to JSON-serialized values, backed by SQLite.
//
// The contract is deliberately small. Get returns no error for a missing
// key, Set overwrites unconditionally, Remove is idempotent. There is no
// atomicity across keys: a crash between two Sets (say, the post collection
// and the school's usage counter) leaves valid-but-inconsistent data, and
// callers must render defensively rather than expect reconciliation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"brandstudio/internal/logging"

	_ "modernc.org/sqlite"
)

// RecordStore is the single shared mutable resource in the system. One
// logical writer at a time; two processes mutating the same store can
// clobber each other (last Set wins), which is an accepted limitation.
type RecordStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema as needed.
func Open(path string) (*RecordStore, error) {
	logging.Store("Opening record store at %s", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}

	s := &RecordStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the records table. Each logical collection lives
// under one key; values are opaque JSON documents.
func (s *RecordStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}
	return nil
}

// Get returns the raw JSON stored under key. A missing key yields
// (nil, false, nil), never an error.
func (s *RecordStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set serializes v as JSON and overwrites whatever is under key. Each Set
// is a single autocommit statement; multi-key sequences are not atomic.
func (s *RecordStore) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		"INSERT INTO records(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	logging.StoreDebug("Set %s (%d bytes)", key, len(data))
	return nil
}

// Remove deletes the value under key. Removing an absent key is a no-op.
func (s *RecordStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// GetJSON decodes the value under key into out. Returns false with no
// error when the key is absent; out is left untouched in that case.
func (s *RecordStore) GetJSON(key string, out interface{}) (bool, error) {
	data, ok, err := s.Get(key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return true, nil
}

// Path returns the on-disk location of the store.
func (s *RecordStore) Path() string {
	return s.dbPath
}

// Close releases the underlying database handle.
func (s *RecordStore) Close() error {
	return s.db.Close()
}
