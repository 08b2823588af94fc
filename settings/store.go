package settings

import (
	"maps"
	"sync"
)

// Store abstracts the persistence backing the Settings namespace. The
// dispatch core never persists its own state; durable backends live outside
// it and plug in here.
type Store interface {
	// User returns the stored user settings document. A store with no prior
	// data returns an empty, non-nil map.
	User() (map[string]any, error)
	// UpdateUser merges patch into the user settings document and returns
	// the updated document.
	UpdateUser(patch map[string]any) (map[string]any, error)
}

// InMemoryStore is a volatile Store implementation keeping the user document
// in a process-local map. It is safe for concurrent access and suited to
// tests and default development runs. Returned documents are cloned to
// prevent external mutation of internal state.
type InMemoryStore struct {
	mu   sync.RWMutex
	user map[string]any
}

// NewInMemoryStore constructs an empty in-memory settings store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{user: make(map[string]any)}
}

// User returns a clone of the stored user settings.
func (s *InMemoryStore) User() (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.user), nil
}

// UpdateUser merges patch into the user settings and returns a clone of the
// result.
func (s *InMemoryStore) UpdateUser(patch map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.user, patch)
	return maps.Clone(s.user), nil
}
