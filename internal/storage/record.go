// Package storage persists the high-score record between sessions.
// Two backends share the Store interface: a JSON file and a single-row
// SQLite table using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors returned by Store.Load.
var (
	ErrNotFound  = errors.New("storage: no high-score record")
	ErrMalformed = errors.New("storage: malformed high-score record")
)

// Record is the persisted high score and the context it was earned in.
type Record struct {
	HighScore int    `json:"high_score"`
	Path      string `json:"path"`
}

// Reconcile returns the record to use for a run in context tag.
// A record from another context starts again from zero.
func (r Record) Reconcile(tag string) Record {
	if r.Path != tag {
		return Record{HighScore: 0, Path: tag}
	}
	return r
}

// Observe raises the high score to score if it is higher.
func (r *Record) Observe(score int) {
	r.HighScore = max(r.HighScore, score)
}

// Store reads and writes the high-score record.
type Store interface {
	// Load returns the stored record, ErrNotFound if there is none, or an
	// error wrapping ErrMalformed if it cannot be decoded.
	Load() (Record, error)
	// Save replaces the stored record.
	Save(rec Record) error
	Close() error
}

// LoadRecord loads the record for context tag. A missing record yields the
// default record. A malformed one yields the default record together with
// the error, so callers can warn and carry on.
func LoadRecord(s Store, tag string) (Record, error) {
	rec, err := s.Load()
	switch {
	case errors.Is(err, ErrNotFound):
		return Record{Path: tag}, nil
	case err != nil:
		return Record{Path: tag}, err
	}
	return rec.Reconcile(tag), nil
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open opens the store of the given backend at path.
func Open(backend, path string) (Store, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendJSON, "":
		return NewJSONStore(expanded), nil
	case BackendSQLite:
		return OpenSQLite(expanded)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// ensureDir creates the parent directories of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}
