// Package memory provides the in-process cache backing the read-model
// layer. Entries are serialized payloads with no expiry; they are removed
// only by explicit invalidation. There is no eviction; the key space has
// bounded cardinality, so memory stays bounded too.
package memory

import (
	"context"
	"sync"

	"storefront-backend/application/ports"
)

// Store is a mutex-guarded map from cache key to serialized payload.
type Store struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewStore creates an empty cache store.
func NewStore() *Store {
	return &Store{
		items: make(map[string][]byte),
	}
}

// Has reports whether the key holds a value.
func (s *Store) Has(_ context.Context, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[key]
	return ok
}

// Get returns the stored bytes or ports.ErrCacheMiss. The returned slice is
// a copy; callers may retain or mutate it freely.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key, overwriting unconditionally.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = stored
	return nil
}

// Delete removes the key; absent keys are a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

var _ ports.Cache = (*Store)(nil)
