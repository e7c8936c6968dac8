package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// JSONStore keeps the record in a JSON file:
//
//	{
//	    "high_score": 10,
//	    "path": "/home/me/games"
//	}
type JSONStore struct {
	path string
}

// NewJSONStore returns a store for the file at path. The file is not
// touched until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file path of the store.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads and decodes the record file.
func (s *JSONStore) Load() (Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	var rec Record
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	if rec.HighScore < 0 {
		return Record{}, fmt.Errorf("%w: %s: negative high score %d", ErrMalformed, s.path, rec.HighScore)
	}
	return rec, nil
}

// Save rewrites the record file in full.
func (s *JSONStore) Save(rec Record) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("storage: cannot create %s: %w", s.path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rec); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *JSONStore) Close() error {
	return nil
}
