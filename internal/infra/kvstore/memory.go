// Package kvstore provides the durable key-value backends for carts and wishlists.
//
// Every backend is a service.VersionedKVStore: plain Set always bumps the
// version, CompareAndSet only writes over the version the caller read.
package kvstore

import (
	"context"
	"sync"

	"storefront/internal/domain/service"
)

type memoryEntry struct {
	value   string
	version int64
}

// memoryStore keeps values in process memory. Intended for local runs and tests.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() service.VersionedKVStore {
	return &memoryStore{data: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := s.GetVersioned(ctx, key)

	return value, found, err
}

func (s *memoryStore) GetVersioned(_ context.Context, key string) (string, int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.data[key]

	return entry.value, entry.version, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = memoryEntry{value: value, version: s.data[key].version + 1}

	return nil
}

func (s *memoryStore) CompareAndSet(_ context.Context, key, value string, expected int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[key].version != expected {
		return 0, service.ErrVersionConflict
	}
	next := memoryEntry{value: value, version: expected + 1}
	s.data[key] = next

	return next.version, nil
}
