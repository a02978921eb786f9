package store

import (
	"context"
	"sync"

	"vigia/internal/score"
	id "vigia/pkg/domain"
)

// MemoryProfile is the in-memory signal source and score sink used for local
// development and tests.
type MemoryProfile struct {
	mu     sync.RWMutex
	inputs map[id.CoordinatorID]score.Inputs
	scores map[id.CoordinatorID]int
}

func NewMemoryProfile() *MemoryProfile {
	return &MemoryProfile{
		inputs: make(map[id.CoordinatorID]score.Inputs),
		scores: make(map[id.CoordinatorID]int),
	}
}

// SetInputs seeds the signals for one coordinator.
func (m *MemoryProfile) SetInputs(coordinatorID id.CoordinatorID, in score.Inputs) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[coordinatorID] = in
}

// Score returns the last persisted score.
func (m *MemoryProfile) Score(coordinatorID id.CoordinatorID) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scores[coordinatorID]
	return s, ok
}

func (m *MemoryProfile) GetStreakCount(_ context.Context, coordinatorID id.CoordinatorID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[coordinatorID].StreakCount, nil
}

func (m *MemoryProfile) GetMotivationDeclared(_ context.Context, coordinatorID id.CoordinatorID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[coordinatorID].MotivationDeclared, nil
}

func (m *MemoryProfile) GetAverageSkillRating(_ context.Context, coordinatorID id.CoordinatorID) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[coordinatorID].AverageSkillRating, nil
}

func (m *MemoryProfile) CountAvailabilityBlocks(_ context.Context, coordinatorID id.CoordinatorID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[coordinatorID].AvailabilityBlocks, nil
}

func (m *MemoryProfile) CountGeoZones(_ context.Context, coordinatorID id.CoordinatorID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[coordinatorID].GeoZones, nil
}

func (m *MemoryProfile) UpdateScore(_ context.Context, coordinatorID id.CoordinatorID, s int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[coordinatorID] = s
	return nil
}
