package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the inbox and persists them. Persistence
// failures are logged and skipped so one bad event cannot wedge the pipeline.
// An optional sink receives a copy of every stored event.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.process(ctx, event)
		}
	}
}

func (w *Worker) process(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "append audit event",
			"action", event.Action,
			"coordinator_id", event.CoordinatorID,
			"error", err,
		)
		return
	}
	if w.sink == nil {
		return
	}
	if err := w.sink.Publish(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "publish audit event",
			"action", event.Action,
			"event_id", event.ID,
			"error", err,
		)
	}
}
