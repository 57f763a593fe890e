package users

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
)

// MemoryStore keeps users in process memory, partitioned by database name.
// It is meant for tests and local development.
type MemoryStore struct {
	name dbrouter.NameFunc

	mu        sync.RWMutex
	databases map[string][]User
}

// NewMemoryStore returns a store that partitions records by name(ctx).
func NewMemoryStore(name dbrouter.NameFunc) *MemoryStore {
	return &MemoryStore{
		name:      name,
		databases: make(map[string][]User),
	}
}

// Create stores u under the routed database name.
func (s *MemoryStore) Create(ctx context.Context, u User) (User, error) {
	doc, err := toDocument(u)
	if err != nil {
		return User{}, err
	}
	stored := doc.user()

	db := s.name(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.databases[db] = append(s.databases[db], stored)
	return stored, nil
}

// List returns a copy of the users stored under the routed database name.
func (s *MemoryStore) List(ctx context.Context) ([]User, error) {
	db := s.name(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.databases[db])
	if out == nil {
		out = []User{}
	}
	return out, nil
}

// Databases returns the names of databases holding at least one record, sorted.
func (s *MemoryStore) Databases() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.databases))
	for name := range s.databases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
