package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BlobStorage is the object storage collaborator. Put returns the public
// locator saved on the document record.
type BlobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalStorage keeps blobs on disk under a base directory. Files are served
// by the HTTP layer under publicPrefix.
type LocalStorage struct {
	baseDir      string
	publicPrefix string
}

func NewLocalStorage(baseDir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{baseDir: baseDir, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}, nil
}

func (l *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	full := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return l.publicPrefix + "/" + key, nil
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// BaseDir exposes the storage root for static serving and the watcher.
func (l *LocalStorage) BaseDir() string { return l.baseDir }
