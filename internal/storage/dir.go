package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir stores each key as <key>.json in a directory.
type Dir struct {
	dataDir string
}

// NewDir creates a Dir backend, creating the directory if needed.
func NewDir(dataDir string) (*Dir, error) {
	dataDir, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Dir{dataDir: dataDir}, nil
}

// path returns the file holding key
func (d *Dir) path(key string) string {
	return filepath.Join(d.dataDir, key+".json")
}

// Get reads the file for key.
func (d *Dir) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Put writes the file for key through a temporary file and a rename, so a
// reader never sees a half-written collection.
func (d *Dir) Put(key string, value []byte) error {
	tmp, err := os.CreateTemp(d.dataDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", key, err)
	}
	if err := os.Rename(tmpName, d.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (d *Dir) Close() error {
	return nil
}
