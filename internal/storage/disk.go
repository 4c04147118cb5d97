package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes uploads to a local directory and serves them under a
// base URL (the router exposes the directory as static files).
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskStore) Upload(file UploadedFile) (string, error) {
	// uuid prefix keeps colliding client filenames apart
	name := uuid.New().String() + filepath.Ext(file.Name)
	if err := os.WriteFile(filepath.Join(s.dir, name), file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
