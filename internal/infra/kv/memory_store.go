package kv

import (
	"context"
	"sort"
	"sync"

	"million/internal/domain/service"
)

// memoryStore is a process-local KeyValueStore. Safe for concurrent use.
type memoryStore struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewMemoryStore creates an empty in-memory key-value store.
func NewMemoryStore() service.KeyValueStore {
	return &memoryStore{
		sets: make(map[string]map[string]struct{}),
	}
}

// SetAdd adds a member to the set stored under key.
func (s *memoryStore) SetAdd(_ context.Context, key, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{})
		s.sets[key] = set
	}
	set[member] = struct{}{}

	return nil
}

// SetRemove removes a member from the set stored under key.
func (s *memoryStore) SetRemove(_ context.Context, key, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.sets[key]; ok {
		delete(set, member)
		if len(set) == 0 {
			delete(s.sets, key)
		}
	}

	return nil
}

// SetMembers returns all members of the set stored under key, sorted for
// deterministic output.
func (s *memoryStore) SetMembers(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.sets[key]
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	sort.Strings(members)

	return members, nil
}
