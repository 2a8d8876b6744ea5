package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is a string key/value store persisted in sqlite. It plays the role a
// browser's local storage plays for a web page: a handful of keys, each
// holding one serialized value.
type Store struct {
	db *sql.DB
}

// UpdateFunc receives the current value of a key (ok is false when the key is
// absent) and returns the value to write back.
type UpdateFunc func(old string, ok bool) (string, error)

// busyTimeoutMS is how long a writer waits for another process (the TUI and
// a scan subcommand sharing one file) before giving up with SQLITE_BUSY.
const busyTimeoutMS = 5000

// Open opens or creates a store at the given path. ":memory:" gives a
// throwaway store.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("opening storage db: %w", err)
	}
	// A second connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// dsn adds a busy timeout and immediate transactions, so Update takes the
// write lock before reading. Files also use WAL.
func dsn(dbPath string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	q.Set("_txlock", "immediate")
	if dbPath != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return "file:" + dbPath + "?" + q.Encode()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS local_storage (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating local_storage table: %w", err)
	}
	return nil
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	return getItem(s.db, key)
}

// SetItem stores value under key, replacing any previous value.
func (s *Store) SetItem(key, value string) error {
	return setItem(s.db, key, value)
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *Store) RemoveItem(key string) error {
	if _, err := s.db.Exec("DELETE FROM local_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

// Update runs a read-modify-write of key inside one transaction. If fn
// returns an error nothing is written.
func (s *Store) Update(key string, fn UpdateFunc) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	old, ok, err := getItem(tx, key)
	if err != nil {
		return err
	}
	value, err := fn(old, ok)
	if err != nil {
		return err
	}
	if err := setItem(tx, key, value); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func getItem(q querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRow("SELECT value FROM local_storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return value, true, nil
}

func setItem(q querier, key, value string) error {
	_, err := q.Exec(`
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}
