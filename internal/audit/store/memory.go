package store

import (
	"context"
	"sync"

	"vigia/internal/audit"
	id "vigia/pkg/domain"
)

type MemoryStore struct {
	mu     sync.RWMutex
	events map[id.CoordinatorID][]audit.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[id.CoordinatorID][]audit.Event)}
}

func (s *MemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CoordinatorID] = append(s.events[event.CoordinatorID], event)
	return nil
}

func (s *MemoryStore) ListByCoordinator(_ context.Context, coordinatorID id.CoordinatorID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[coordinatorID]...), nil
}
