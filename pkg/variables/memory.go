// Package variables implements the app-level variable store written by
// setVariable actions. Keys follow the app_variable_<name> convention so
// stored variables never collide with other state in a shared backend.
package variables

import (
	"context"
	"sync"

	"github.com/pageforge/pageforge/pkg/protocol"
)

const keyPrefix = "app_variable_"

// Key returns the storage key for a variable name.
func Key(name string) string {
	return keyPrefix + name
}

// MemoryStore keeps variables in process memory. It backs editing
// sessions and tests; published apps use the redis store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

func (s *MemoryStore) Set(_ context.Context, name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[Key(name)] = value

	return nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[Key(name)]

	return value, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, Key(name))

	return nil
}

var _ protocol.VariableStore = (*MemoryStore)(nil)
