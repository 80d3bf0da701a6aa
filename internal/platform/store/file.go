package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in <dir>/<collection>.json. Writes go
// through a temp file plus rename so a crashed write never leaves a
// half-written collection behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store: data directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads a collection. A missing file is an empty collection.
func (f *FileStore) Load(_ context.Context, collection string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return emptyArray, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", collection, err)
	}
	return raw, nil
}

// Save atomically replaces a collection.
func (f *FileStore) Save(_ context.Context, collection string, data []byte) error {
	target := f.path(collection)
	tmp, err := os.CreateTemp(f.dir, collection+"-*.json")
	if err != nil {
		return fmt.Errorf("store: temp file for %s: %w", collection, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("store: replace %s: %w", collection, err)
	}
	return nil
}

func (f *FileStore) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}
