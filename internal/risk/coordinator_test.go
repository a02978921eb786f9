package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "vigia/pkg/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestEvaluateCoordinator(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rec          CoordinatorRecord
		wantSeverity Severity
		wantReason   string
	}{
		{
			name:         "zero streak is critical",
			rec:          CoordinatorRecord{StreakCount: 0},
			wantSeverity: SeverityCritical,
			wantReason:   "streak_count = 0",
		},
		{
			name:         "streak of one is warning",
			rec:          CoordinatorRecord{StreakCount: 1},
			wantSeverity: SeverityWarning,
			wantReason:   "streak_count low",
		},
		{
			name:         "streak of two is warning",
			rec:          CoordinatorRecord{StreakCount: 2},
			wantSeverity: SeverityWarning,
			wantReason:   "streak_count low",
		},
		{
			name:         "streak of three is info",
			rec:          CoordinatorRecord{StreakCount: 3},
			wantSeverity: SeverityInfo,
			wantReason:   "streak_count moderate",
		},
		{
			name:         "streak of four is info",
			rec:          CoordinatorRecord{StreakCount: 4},
			wantSeverity: SeverityInfo,
			wantReason:   "streak_count moderate",
		},
		{
			name:         "healthy streak is ok",
			rec:          CoordinatorRecord{StreakCount: 5},
			wantSeverity: SeverityOK,
			wantReason:   "Healthy streak",
		},
		{
			name:         "paused overrides even critical down to info",
			rec:          CoordinatorRecord{StreakCount: 0, GamificationPaused: true},
			wantSeverity: SeverityInfo,
			wantReason:   "Gamification paused",
		},
		{
			name:         "paused overrides healthy up to info",
			rec:          CoordinatorRecord{StreakCount: 9, GamificationPaused: true},
			wantSeverity: SeverityInfo,
			wantReason:   "Gamification paused",
		},
		{
			name: "unverified gps raises healthy to warning",
			rec: CoordinatorRecord{
				StreakCount: 10,
				Metrics:     &CoordinatorMetrics{GPSVerified: boolPtr(false)},
			},
			wantSeverity: SeverityWarning,
			wantReason:   "GPS not verified",
		},
		{
			name: "unverified gps does not mask critical",
			rec: CoordinatorRecord{
				StreakCount: 0,
				Metrics:     &CoordinatorMetrics{GPSVerified: boolPtr(false)},
			},
			wantSeverity: SeverityCritical,
			wantReason:   "GPS not verified",
		},
		{
			name: "verified gps changes nothing",
			rec: CoordinatorRecord{
				StreakCount: 7,
				Metrics:     &CoordinatorMetrics{GPSVerified: boolPtr(true)},
			},
			wantSeverity: SeverityOK,
			wantReason:   "Healthy streak",
		},
		{
			name: "absent gps flag says nothing",
			rec: CoordinatorRecord{
				StreakCount: 7,
				Metrics:     &CoordinatorMetrics{},
			},
			wantSeverity: SeverityOK,
			wantReason:   "Healthy streak",
		},
		{
			name: "paused then unverified gps lands on warning",
			rec: CoordinatorRecord{
				StreakCount:        6,
				GamificationPaused: true,
				Metrics:            &CoordinatorMetrics{GPSVerified: boolPtr(false)},
			},
			wantSeverity: SeverityWarning,
			wantReason:   "GPS not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rec.CoordinatorID = id.NewCoordinatorID()
			v := EvaluateCoordinator(tt.rec, now)

			assert.Equal(t, tt.wantSeverity, v.Severity)
			assert.Equal(t, tt.wantReason, v.Reason)
			assert.Equal(t, tt.rec.CoordinatorID.String(), v.SubjectID)
			assert.Equal(t, DomainCoordinators, v.Domain)
			assert.Equal(t, now, v.EvaluatedAt)
		})
	}
}

// Same immutable record, same verdict: no hidden clock or randomness beyond
// the evaluated_at stamp the caller controls.
func TestEvaluateCoordinatorIsDeterministic(t *testing.T) {
	now := time.Now()
	rec := CoordinatorRecord{
		CoordinatorID: id.NewCoordinatorID(),
		StreakCount:   2,
		Metrics:       &CoordinatorMetrics{GPSVerified: boolPtr(false)},
	}

	first := EvaluateCoordinator(rec, now)
	second := EvaluateCoordinator(rec, now)
	assert.Equal(t, first, second)
}
