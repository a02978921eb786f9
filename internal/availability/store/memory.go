// Package store provides the availability persistence implementations.
package store

import (
	"context"
	"sync"

	"vigia/internal/availability"
	id "vigia/pkg/domain"
)

type MemoryStore struct {
	mu     sync.RWMutex
	blocks map[id.CoordinatorID][]availability.Block
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blocks: make(map[id.CoordinatorID][]availability.Block)}
}

func (s *MemoryStore) ListBlocks(_ context.Context, coordinatorID id.CoordinatorID) ([]availability.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]availability.Block{}, s.blocks[coordinatorID]...), nil
}

func (s *MemoryStore) ReplaceBlocks(_ context.Context, coordinatorID id.CoordinatorID, blocks []availability.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[coordinatorID] = append([]availability.Block{}, blocks...)
	return nil
}
