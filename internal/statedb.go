package internal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// storeKey is the fixed slot the whole store document lives under.
const storeKey = "tabstash.workspaceStore"

// StateDB persists the StoreState as a single JSON value in a sqlite
// key-value table, mirroring the editor's own globalStorage layout.
type StateDB struct {
	db   *sql.DB
	path string
}

// OpenStateDB opens the state database, creating the file and the
// ItemTable schema on first use.
func OpenStateDB(path string) (*StateDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StorageError{Path: path, Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	schema := `CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY NOT NULL,
		value BLOB
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return &StateDB{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// ReadState loads the store document. An absent slot reads as an empty
// store, not an error.
func (s *StateDB) ReadState() (*StoreState, error) {
	var value []byte
	row := s.db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", storeKey)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &StoreState{}, nil
		}
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}

	var state StoreState
	if err := json.Unmarshal(value, &state); err != nil {
		return nil, &StorageError{Path: s.path, Op: "parse", Err: err}
	}
	return &state, nil
}

// WriteState replaces the store document wholesale.
func (s *StateDB) WriteState(state *StoreState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	query := `INSERT INTO ItemTable (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(query, storeKey, data); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	return nil
}
