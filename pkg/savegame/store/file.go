package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one file per slot, named <base path><slot>.save.
type FileStore struct {
	basePath string
}

// NewFileStore creates a FileStore writing under basePath, which is a
// filename prefix rather than a directory: slot 1 with base "saves/slot"
// lives at "saves/slot1.save". The containing directory is created if
// needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path must not be empty")
	}
	if dir := filepath.Dir(basePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create save directory: %v", err)
		}
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

// Write replaces the slot file. Data goes to a temporary file first and is
// renamed into place so a crash mid-write cannot corrupt an existing save.
func (s *FileStore) Write(ctx context.Context, slot int, data []byte) error {
	path := s.path(slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace save file: %v", err)
	}
	return nil
}

func (s *FileStore) Read(ctx context.Context, slot int) ([]byte, error) {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read save file: %v", err)
	}
	return data, nil
}

func (s *FileStore) path(slot int) string {
	return fmt.Sprintf("%s%d.save", s.basePath, slot)
}
