// Package profile manages the coordinator's declared skills and geo-coverage
// zones.
package profile

// Skill is one declared skill with a 1-5 self-rating. The pair
// (coordinator, name) is unique; re-submitting a skill updates its rating.
type Skill struct {
	Name   string `json:"skill_name"`
	Rating int    `json:"rating"`
}
