package risk

import (
	"context"
	"sync"
)

// In-memory sources keep local development and tests lightweight. They
// intentionally favor clarity over performance.

// MemorySources implements all three domain sources over slices.
type MemorySources struct {
	mu           sync.RWMutex
	coordinators []CoordinatorRecord
	walks        []WalkRecord
	events       []EconomicEvent
}

func NewMemorySources() *MemorySources {
	return &MemorySources{}
}

func (m *MemorySources) ListCoordinators(_ context.Context) ([]CoordinatorRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]CoordinatorRecord, len(m.coordinators))
	copy(out, m.coordinators)
	return out, nil
}

func (m *MemorySources) ListWalks(_ context.Context) ([]WalkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]WalkRecord, len(m.walks))
	copy(out, m.walks)
	return out, nil
}

func (m *MemorySources) ListEvents(_ context.Context) ([]EconomicEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]EconomicEvent, len(m.events))
	copy(out, m.events)
	return out, nil
}

// SetCoordinators replaces the coordinator rows.
func (m *MemorySources) SetCoordinators(recs []CoordinatorRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coordinators = recs
}

// SetWalks replaces the walk rows.
func (m *MemorySources) SetWalks(recs []WalkRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.walks = recs
}

// SetEvents replaces the ledger rows. Callers keep them ordered by id.
func (m *MemorySources) SetEvents(evts []EconomicEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = evts
}
