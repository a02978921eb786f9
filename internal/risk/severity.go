package risk

import (
	"encoding/json"
	"fmt"
)

// Severity is the ordered health classification shared by every evaluator.
// The order is total: OK < INFO < WARNING < CRITICAL < BLOCKER.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityCritical
	SeverityBlocker
)

var severityNames = [...]string{"OK", "INFO", "WARNING", "CRITICAL", "BLOCKER"}

func (s Severity) String() string {
	if s < SeverityOK || s > SeverityBlocker {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Worse returns the more severe of the two. This is the merge rule used
// whenever two independent conditions apply to the same subject: comparison
// is by rank, never by order of evaluation, so a higher severity is never
// silently overwritten by a lower one.
func Worse(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}

// MarshalJSON renders the severity by name, matching the dashboard contract.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity maps a severity name back to its rank.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return SeverityOK, fmt.Errorf("unknown severity %q", name)
}

// Severities lists all levels in ascending order. Summary counters iterate
// this so every level appears in output even at zero.
func Severities() []Severity {
	return []Severity{SeverityOK, SeverityInfo, SeverityWarning, SeverityCritical, SeverityBlocker}
}
