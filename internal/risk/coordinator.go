package risk

import "time"

// EvaluateCoordinator classifies one coordinator's health.
// This is pure domain logic - no I/O, no side effects beyond the evaluatedAt
// stamp passed in by the caller.
//
// Combination strategy: override chain. Rules run in a fixed order; the
// streak rules characterize the base severity, the gamification rule then
// overrides unconditionally, and the GPS rule merges worst-of. The
// gamification override can lower a CRITICAL to INFO - that asymmetry with
// the other evaluators is inherited product behavior, kept on purpose.
//
// Rule order:
//  1. streak_count == 0            -> CRITICAL
//  2. streak_count in [1,2]        -> WARNING
//  3. streak_count in [3,4]        -> INFO
//  4. otherwise                    -> OK
//  5. gamification_paused          -> override to INFO, even over CRITICAL
//  6. metrics.gps_verified == false -> merge WARNING (CRITICAL is preserved)
func EvaluateCoordinator(rec CoordinatorRecord, evaluatedAt time.Time) Verdict {
	severity := SeverityOK
	reason := "Healthy streak"

	switch {
	case rec.StreakCount == 0:
		severity = SeverityCritical
		reason = "streak_count = 0"
	case rec.StreakCount <= 2:
		severity = SeverityWarning
		reason = "streak_count low"
	case rec.StreakCount <= 4:
		severity = SeverityInfo
		reason = "streak_count moderate"
	}

	// Unconditional override: a paused coordinator is parked, not failing.
	if rec.GamificationPaused {
		severity = SeverityInfo
		reason = "Gamification paused"
	}

	// Merge, not override: an unverified GPS raises to WARNING but never
	// masks an existing CRITICAL. Only an explicit false counts; an absent
	// metrics blob says nothing about GPS.
	if rec.Metrics != nil && rec.Metrics.GPSVerified != nil && !*rec.Metrics.GPSVerified {
		severity = Worse(severity, SeverityWarning)
		reason = "GPS not verified"
	}

	return Verdict{
		SubjectID:   rec.CoordinatorID.String(),
		Domain:      DomainCoordinators,
		Severity:    severity,
		Reason:      reason,
		EvaluatedAt: evaluatedAt,
	}
}
