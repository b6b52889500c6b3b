package storage

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	"github.com/wolfdeveloper/wolfdevlovers/internal/filex"
)

// FileStore keeps media on the local filesystem under a root directory.
// Intended for development and single-node deployments.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory under the working directory if
// needed and returns a store rooted there.
func NewFileStore(dirName string) (*FileStore, error) {
	root, err := filex.EnsureSubdDir(dirName)
	if err != nil {
		return nil, err
	}
	return &FileStore{root: root}, nil
}

// path maps a storage key to a filesystem path, rejecting keys that would
// escape the root.
func (s *FileStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", common.ErrorNotFound
	}
	return filepath.Join(s.root, clean), nil
}

func (s *FileStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o660)
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, nil
}
