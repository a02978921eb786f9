package score

import (
	"time"

	id "vigia/pkg/domain"
)

// Inputs are the five independently sourced signals one recalculation reads.
type Inputs struct {
	StreakCount        int
	MotivationDeclared bool
	AverageSkillRating float64
	AvailabilityBlocks int
	GeoZones           int
}

// Breakdown holds the weighted sub-scores. The five components sum to the
// total by construction, so it round-trips through the audit log losslessly.
type Breakdown struct {
	Streak       float64 `json:"streak_component"`
	Motivation   float64 `json:"motivation_component"`
	Skills       float64 `json:"skills_component"`
	Availability float64 `json:"availability_component"`
	Geo          float64 `json:"geo_component"`
}

// Result is the outcome of one recalculation. ScorePersisted is false when
// the profile write failed; the score and breakdown are still valid.
type Result struct {
	CoordinatorID  id.CoordinatorID `json:"coordinator_id"`
	Score          int              `json:"score"`
	Breakdown      Breakdown        `json:"breakdown"`
	ScorePersisted bool             `json:"score_persisted"`
	CalculatedAt   time.Time        `json:"calculated_at"`
}
