package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"vigia/pkg/requestcontext"
)

// Publisher hands events to the background worker without ever blocking the
// caller. Domain operations must not fail or stall because the audit pipeline
// is behind; when the inbox is full the event is dropped and logged.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enriches the event from the request context and enqueues it.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"coordinator_id", event.CoordinatorID,
			"request_id", event.RequestID,
		)
	}
}
