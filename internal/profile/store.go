package profile

import (
	"context"

	id "vigia/pkg/domain"
)

// SkillStore persists declared skills. Upsert keys on (coordinator, name).
type SkillStore interface {
	ListSkills(ctx context.Context, coordinatorID id.CoordinatorID) ([]Skill, error)
	UpsertSkill(ctx context.Context, coordinatorID id.CoordinatorID, skill Skill) error
}

// GeoStore persists geo-coverage zones as a replace-set.
type GeoStore interface {
	ListZones(ctx context.Context, coordinatorID id.CoordinatorID) ([]string, error)
	ReplaceZones(ctx context.Context, coordinatorID id.CoordinatorID, zones []string) error
}

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks
