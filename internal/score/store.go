package score

import (
	"context"

	id "vigia/pkg/domain"
)

// ProfileSource reads the five scoring signals for one coordinator. A
// coordinator with no skills declared reports an average rating of 0.
type ProfileSource interface {
	GetStreakCount(ctx context.Context, coordinatorID id.CoordinatorID) (int, error)
	GetMotivationDeclared(ctx context.Context, coordinatorID id.CoordinatorID) (bool, error)
	GetAverageSkillRating(ctx context.Context, coordinatorID id.CoordinatorID) (float64, error)
	CountAvailabilityBlocks(ctx context.Context, coordinatorID id.CoordinatorID) (int, error)
	CountGeoZones(ctx context.Context, coordinatorID id.CoordinatorID) (int, error)
}

// ScoreWriter persists the recomputed score on the coordinator profile.
type ScoreWriter interface {
	UpdateScore(ctx context.Context, coordinatorID id.CoordinatorID, score int) error
}

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks
