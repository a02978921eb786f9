package availability

import (
	"context"
	"log/slog"

	"vigia/internal/audit"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/requestcontext"
)

// AuditPublisher decouples the service from the audit pipeline for tests.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service validates and replaces weekly schedules. Replacement is
// all-or-nothing: a single invalid block rejects the whole set and leaves
// the stored schedule untouched.
type Service struct {
	store   Store
	auditor AuditPublisher
	logger  *slog.Logger
}

func NewService(store Store, auditor AuditPublisher, logger *slog.Logger) *Service {
	return &Service{store: store, auditor: auditor, logger: logger}
}

// List returns the coordinator's current schedule.
func (s *Service) List(ctx context.Context, coordinatorID id.CoordinatorID) ([]Block, error) {
	if coordinatorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}
	blocks, err := s.store.ListBlocks(ctx, coordinatorID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "list availability", err)
	}
	return blocks, nil
}

// Replace validates the full set and swaps it in. An empty set is a valid
// schedule (the coordinator withdrew all availability).
func (s *Service) Replace(ctx context.Context, coordinatorID id.CoordinatorID, blocks []Block) error {
	if coordinatorID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}
	if err := ValidateBlocks(blocks); err != nil {
		return err
	}

	if err := s.store.ReplaceBlocks(ctx, coordinatorID, blocks); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "replace availability", err)
	}

	s.auditor.Emit(ctx, audit.Event{
		CoordinatorID: coordinatorID,
		Action:        audit.ActionUpdateAvailability,
		Details:       map[string]any{"count": len(blocks)},
	})

	s.logger.InfoContext(ctx, "availability replaced",
		"request_id", requestcontext.RequestID(ctx),
		"coordinator_id", coordinatorID,
		"blocks", len(blocks),
	)
	return nil
}
