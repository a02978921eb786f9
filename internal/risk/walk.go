package risk

import "time"

// EvaluateWalk classifies one guided walk's safety posture.
//
// Combination strategy: first match wins. Unlike the coordinator evaluator
// there is no merge; the rules are a strict priority list and evaluation
// stops at the first hit.
//
// Priority order:
//  1. gps_verified == false                          -> WARNING
//  2. max_capacity > 0 && participants > max_capacity -> WARNING
//  3. participants == 0                               -> INFO
//  4. otherwise                                       -> OK
func EvaluateWalk(rec WalkRecord, evaluatedAt time.Time) Verdict {
	severity := SeverityOK
	reason := "Valid walk"

	switch {
	case !rec.GPSVerified:
		severity = SeverityWarning
		reason = "GPS not verified"
	case rec.MaxCapacity > 0 && rec.ParticipantsCount > rec.MaxCapacity:
		severity = SeverityWarning
		reason = "Participants exceed capacity"
	case rec.ParticipantsCount == 0:
		severity = SeverityInfo
		reason = "No participants"
	}

	return Verdict{
		SubjectID:   rec.WalkID.String(),
		Domain:      DomainWalks,
		Severity:    severity,
		Reason:      reason,
		EvaluatedAt: evaluatedAt,
	}
}
