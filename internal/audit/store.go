package audit

import (
	"context"

	id "vigia/pkg/domain"
)

// Store persists audit events. Implementations must tolerate concurrent
// appends from the worker and readers.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCoordinator(ctx context.Context, coordinatorID id.CoordinatorID) ([]Event, error)
}

// Sink receives a copy of every persisted event. Sinks are best-effort;
// a failing sink never blocks persistence.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks
