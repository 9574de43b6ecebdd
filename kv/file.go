package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as one file per bucket/key pair under a
// data directory. Writes go through a temporary file and an atomic
// rename, so a crash leaves either the old value or the new one,
// never a torn file.
type File struct {
	dataDir string
	mu      sync.Mutex // Protects concurrent writes to the filesystem
}

func NewFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &File{dataDir: dataDir}, nil
}

func (f *File) path(bucket, key string) string {
	return filepath.Join(f.dataDir, fmt.Sprintf("%s_%s.json", bucket, key))
}

func (f *File) Get(bucket, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(bucket, key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *File) Put(bucket, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	filePath := f.path(bucket, key)
	tempPath := filePath + ".tmp"

	if err := os.WriteFile(tempPath, value, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, filePath)
}

func (f *File) Delete(bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(bucket, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
