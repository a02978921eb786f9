package risk

import "fmt"

// ChainViolation pins one integrity failure to the event where it was
// detected.
type ChainViolation struct {
	EventID int64  `json:"event_id"`
	Reason  string `json:"reason"`
}

// ChainReport summarizes a strict verification pass over the full ledger.
type ChainReport struct {
	OK         bool             `json:"ok"`
	Total      int              `json:"total"`
	LastID     int64            `json:"last_id"`
	LastHash   string           `json:"last_hash"`
	Violations []ChainViolation `json:"violations"`
}

// VerifyChain runs the strict, clearly-labeled verification mode: beyond the
// presence checks the per-event evaluator applies, it requires ids to be
// strictly increasing in storage order and each event's prev_hash to equal
// the hash of its immediate predecessor, bit for bit. The per-event evaluator
// intentionally does not enforce equality; callers opt into this mode when
// tamper evidence matters.
//
// Events are expected in source order (ordered by id ascending). Verification
// continues past failures so the report names every violation, not just the
// first.
func VerifyChain(events []EconomicEvent) ChainReport {
	report := ChainReport{OK: true, Total: len(events)}
	if len(events) == 0 {
		return report
	}

	violate := func(evt EconomicEvent, format string, args ...any) {
		report.OK = false
		report.Violations = append(report.Violations, ChainViolation{
			EventID: int64(evt.ID),
			Reason:  fmt.Sprintf(format, args...),
		})
	}

	var prev *EconomicEvent
	for i := range events {
		evt := events[i]

		if evt.Hash == "" {
			violate(evt, "missing integrity hash")
		}

		if prev == nil {
			// Genesis is exempt from linkage but must not claim a
			// predecessor it does not have.
			if evt.ID > 1 && evt.PrevHash == "" {
				violate(evt, "missing prev_hash")
			}
		} else {
			if evt.ID <= prev.ID {
				violate(evt, "id %d not increasing after %d", evt.ID, prev.ID)
			}
			switch {
			case evt.PrevHash == "":
				violate(evt, "missing prev_hash")
			case prev.Hash != "" && evt.PrevHash != prev.Hash:
				violate(evt, "prev_hash does not match hash of event %d", prev.ID)
			}
		}

		prev = &events[i]
	}

	report.LastID = int64(prev.ID)
	report.LastHash = prev.Hash
	return report
}
