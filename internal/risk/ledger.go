package risk

import "time"

// EvaluateEvent classifies one ledger event's integrity.
//
// Combination strategy: worst-of. Each rule is computed independently and the
// final severity is the worst that fired, with the reason taken from the
// dominating rule. A missing hash therefore outranks a broken chain, which
// outranks a pending review.
//
// Rules:
//   - hash absent/empty                 -> BLOCKER
//   - id > 1 && prev_hash absent/empty  -> CRITICAL
//   - reviewed_flag == false            -> INFO
//
// Only prev_hash presence is checked here; bit-exact linkage lives in
// VerifyChain, the stricter standalone verification.
func EvaluateEvent(evt EconomicEvent, evaluatedAt time.Time) Verdict {
	severity := SeverityOK
	reason := "Healthy event"

	apply := func(s Severity, r string) {
		if s > severity {
			severity = s
			reason = r
		}
	}

	if evt.Hash == "" {
		apply(SeverityBlocker, "Missing integrity hash")
	}
	if evt.ID > 1 && evt.PrevHash == "" {
		apply(SeverityCritical, "Broken hash chain (missing prev_hash)")
	}
	if !evt.Reviewed {
		apply(SeverityInfo, "Pending review")
	}

	return Verdict{
		SubjectID:   evt.ID.String(),
		Domain:      DomainLedger,
		Severity:    severity,
		Reason:      reason,
		EvaluatedAt: evaluatedAt,
	}
}
