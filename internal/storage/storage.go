package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Keys of the persisted collections.
const (
	KeyEvents    = "libraryEvents"
	KeyLibraries = "libraries"
	KeyPresets   = "filterPresets"
)

// ErrNotExist is returned by Backend.Get when nothing is stored under a key.
var ErrNotExist = errors.New("key not found")

// Backend is a key-value store holding whole collections.
type Backend interface {
	// Get returns the value stored under key, or ErrNotExist.
	Get(key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(key string, value []byte) error
	Close() error
}

// Kind names a Backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindBadger Kind = "badger"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Open opens the backend of the given kind rooted at dataDir.
func Open(kind Kind, dataDir string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewDir(dataDir)
	case KindMemory:
		return NewMemory(), nil
	}

	dataDir, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	switch kind {
	case KindBadger:
		return OpenBadger(filepath.Join(dataDir, "badger"))
	case KindSQLite:
		return OpenSQLite(filepath.Join(dataDir, "library-events.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (must be file, badger, sqlite or memory)", kind)
	}
}

// expandHome expands a leading ~/ to the home directory.
func expandHome(dir string) (string, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}
	return dir, nil
}
