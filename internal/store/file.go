package store

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

// FileStore persists the payload to a single file. Writes go through a
// temporary file and an atomic rename so a crash mid-write never leaves
// a torn payload behind.
type FileStore struct {
	path string
	name string
}

// NewFileStore creates a file-backed store at the given path, creating
// parent directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{path: path, name: "file"}, nil
}

// NewSessionFileStore creates the secondary, session-scoped tier under
// the OS temp directory. It survives a builder restart but not a
// machine reboot, which is all the fallback tier promises.
func NewSessionFileStore(key string) (*FileStore, error) {
	s, err := NewFileStore(filepath.Join(os.TempDir(), "formcanvas", key+".json"))
	if err != nil {
		return nil, err
	}
	s.name = "session"
	return s, nil
}

// Name identifies the tier in logs.
func (s *FileStore) Name() string {
	return s.name
}

// Save writes the payload atomically.
func (s *FileStore) Save(data []byte) error {
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewStorageError(s.name, "save", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewStorageError(s.name, "save", err)
	}
	return nil
}

// Load reads the payload; a missing file means no payload yet.
func (s *FileStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError(s.name, "load", err)
	}
	return data, true, nil
}

// Clear removes the payload. Clearing an empty store is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.NewStorageError(s.name, "clear", err)
	}
	return nil
}
