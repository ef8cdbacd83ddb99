// Package storage persists the tab collection, the sort configuration and the
// saved task sets as JSON blobs in a key/value store.
package storage

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// Keys under which each collection is stored
const (
	TabsKey       = "task_tabs_storage"
	SortConfigKey = "SortConfigurationStorage"
	TaskSetsKey   = "TaskSetsStorage"
)

// ErrNotFound is returned by Store.Load when nothing is stored under a key
var ErrNotFound = errors.New("storage: key not found")

// Store is an opaque blob store
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// Inspector is implemented by stores that can list and drop their blobs
type Inspector interface {
	Keys() ([]string, error)
	Delete(key string) error
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob stored under key
func (m *MemoryStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

// Save stores a copy of data under key
func (m *MemoryStore) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = slices.Clone(data)
	return nil
}

// Keys returns the stored keys in sorted order
func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.blobs)), nil
}

// Delete removes the blob stored under key
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}

var _ Inspector = (*MemoryStore)(nil)
