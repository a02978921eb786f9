// Package store provides the profile persistence implementations.
package store

import (
	"context"
	"sync"

	"vigia/internal/profile"
	id "vigia/pkg/domain"
)

type MemoryStore struct {
	mu     sync.RWMutex
	skills map[id.CoordinatorID][]profile.Skill
	zones  map[id.CoordinatorID][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		skills: make(map[id.CoordinatorID][]profile.Skill),
		zones:  make(map[id.CoordinatorID][]string),
	}
}

func (s *MemoryStore) ListSkills(_ context.Context, coordinatorID id.CoordinatorID) ([]profile.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]profile.Skill{}, s.skills[coordinatorID]...), nil
}

func (s *MemoryStore) UpsertSkill(_ context.Context, coordinatorID id.CoordinatorID, skill profile.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.skills[coordinatorID] {
		if existing.Name == skill.Name {
			s.skills[coordinatorID][i] = skill
			return nil
		}
	}
	s.skills[coordinatorID] = append(s.skills[coordinatorID], skill)
	return nil
}

func (s *MemoryStore) ListZones(_ context.Context, coordinatorID id.CoordinatorID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.zones[coordinatorID]...), nil
}

func (s *MemoryStore) ReplaceZones(_ context.Context, coordinatorID id.CoordinatorID, zones []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones[coordinatorID] = append([]string{}, zones...)
	return nil
}
