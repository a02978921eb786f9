// Package risk turns raw operational records into severity verdicts. Each of
// the three domains (coordinators, walks, ledger) has its own evaluator with
// its own rule set and, deliberately, its own combination strategy; the
// service fans out over all three and merges the results for the dashboard.
package risk

import (
	"time"

	id "vigia/pkg/domain"
)

// Domain names one of the three independent record sets the engine evaluates.
type Domain string

const (
	DomainCoordinators Domain = "coordinators"
	DomainWalks        Domain = "walks"
	DomainLedger       Domain = "ledger"
)

// Domains lists every evaluated domain in fan-out order.
func Domains() []Domain {
	return []Domain{DomainCoordinators, DomainWalks, DomainLedger}
}

// Valid reports whether d names a known domain.
func (d Domain) Valid() bool {
	switch d {
	case DomainCoordinators, DomainWalks, DomainLedger:
		return true
	}
	return false
}

// Verdict is the computed severity plus a single human-readable cause for one
// subject at one point in time. Verdicts are projections over current raw
// data and are never persisted.
type Verdict struct {
	SubjectID   string    `json:"subject_id"`
	Domain      Domain    `json:"domain"`
	Severity    Severity  `json:"severity"`
	Reason      string    `json:"reason"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// CoordinatorRecord is the raw scorecard row for one coordinator.
// streak_count is never negative in storage; the evaluator treats it as such.
type CoordinatorRecord struct {
	CoordinatorID      id.CoordinatorID
	StreakCount        int
	GamificationPaused bool
	Metrics            *CoordinatorMetrics
}

// CoordinatorMetrics is the optional structured metrics blob attached to a
// coordinator. GPSVerified distinguishes "explicitly false" from "absent",
// which the evaluator treats differently.
type CoordinatorMetrics struct {
	GPSVerified *bool `json:"gps_verified,omitempty"`
}

// WalkRecord is the raw logistics row for one guided walk. Participants and
// capacity are independently sourced and may disagree; MaxCapacity zero means
// no cap configured, not a violation.
type WalkRecord struct {
	WalkID            id.WalkID
	GPSVerified       bool
	ParticipantsCount int
	MaxCapacity       int
	CreatedAt         time.Time
}

// EconomicEvent is one entry of the hash-linked ledger. PrevHash is empty for
// the genesis event (ID == 1) and must reference the preceding event's hash
// everywhere else.
type EconomicEvent struct {
	ID        id.EventID
	ActorID   string
	Reviewed  bool
	Hash      string
	PrevHash  string
	CreatedAt time.Time
}
