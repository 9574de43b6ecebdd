// Package kv provides the bucketed key-value abstraction backing the
// local fallback store. Both implementations satisfy the same Store
// contract so the store layer never knows whether it is talking to
// process memory or to JSON files on disk.
package kv

import (
	"errors"
	"sync"
)

// ErrKeyNotFound is returned when a requested key does not exist
// within a bucket.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal bucketed key-value contract.
type Store interface {
	// Get retrieves the raw value stored under bucket/key.
	Get(bucket, key string) ([]byte, error)
	// Put stores a raw value under bucket/key, creating the bucket if
	// needed.
	Put(bucket, key string, value []byte) error
	// Delete removes bucket/key. Deleting a missing key is not an error.
	Delete(bucket, key string) error
}

// Mem is a thread-safe in-process Store.
type Mem struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMem() *Mem {
	return &Mem{data: make(map[string]map[string][]byte)}
}

func (m *Mem) Get(bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.data[bucket]
	if !ok {
		return nil, ErrKeyNotFound
	}
	val, ok := b[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Return a copy to prevent external mutation of the stored slice
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *Mem) Put(bucket, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[bucket] == nil {
		m.data[bucket] = make(map[string][]byte)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[bucket][key] = stored
	return nil
}

func (m *Mem) Delete(bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.data[bucket]; ok {
		delete(b, key)
	}
	return nil
}
