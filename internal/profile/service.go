package profile

import (
	"context"
	"fmt"
	"log/slog"

	"vigia/internal/audit"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	platstrings "vigia/pkg/platform/strings"
	"vigia/pkg/requestcontext"
)

// AuditPublisher decouples the service from the audit pipeline for tests.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service manages skills and geo zones for one coordinator at a time.
type Service struct {
	skills  SkillStore
	geo     GeoStore
	auditor AuditPublisher
	logger  *slog.Logger
}

func NewService(skills SkillStore, geo GeoStore, auditor AuditPublisher, logger *slog.Logger) *Service {
	return &Service{skills: skills, geo: geo, auditor: auditor, logger: logger}
}

// ListSkills returns the coordinator's declared skills.
func (s *Service) ListSkills(ctx context.Context, coordinatorID id.CoordinatorID) ([]Skill, error) {
	if coordinatorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}
	skills, err := s.skills.ListSkills(ctx, coordinatorID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "list skills", err)
	}
	return skills, nil
}

// UpsertSkill validates and stores one skill, updating the rating when the
// skill was already declared.
func (s *Service) UpsertSkill(ctx context.Context, coordinatorID id.CoordinatorID, skill Skill) error {
	if coordinatorID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}
	if skill.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "skill_name must not be empty")
	}
	if skill.Rating < 1 || skill.Rating > 5 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("rating must be between 1 and 5, got %d", skill.Rating))
	}

	if err := s.skills.UpsertSkill(ctx, coordinatorID, skill); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "upsert skill", err)
	}

	s.auditor.Emit(ctx, audit.Event{
		CoordinatorID: coordinatorID,
		Action:        audit.ActionUpdateSkill,
		Details:       map[string]any{"skill_name": skill.Name, "rating": skill.Rating},
	})

	s.logger.InfoContext(ctx, "skill upserted",
		"request_id", requestcontext.RequestID(ctx),
		"coordinator_id", coordinatorID,
		"skill", skill.Name,
	)
	return nil
}

// ListZones returns the coordinator's geo-coverage zone names.
func (s *Service) ListZones(ctx context.Context, coordinatorID id.CoordinatorID) ([]string, error) {
	if coordinatorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}
	zones, err := s.geo.ListZones(ctx, coordinatorID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "list zones", err)
	}
	return zones, nil
}

// ReplaceZones de-duplicates the submitted names and swaps the full set.
// The deduplicated set is what the audit entry records.
func (s *Service) ReplaceZones(ctx context.Context, coordinatorID id.CoordinatorID, zones []string) ([]string, error) {
	if coordinatorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}

	unique := platstrings.DedupeAndTrim(zones)
	if err := s.geo.ReplaceZones(ctx, coordinatorID, unique); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "replace zones", err)
	}

	s.auditor.Emit(ctx, audit.Event{
		CoordinatorID: coordinatorID,
		Action:        audit.ActionUpdateGeo,
		Details:       map[string]any{"zones": unique},
	})

	s.logger.InfoContext(ctx, "geo zones replaced",
		"request_id", requestcontext.RequestID(ctx),
		"coordinator_id", coordinatorID,
		"zones", len(unique),
	)
	return unique, nil
}
