// Package availability validates and persists a coordinator's weekly
// schedule. A schedule is always replaced as a whole; validation runs over
// the full replacement set before anything is written.
package availability

// Block is one same-day availability window. Times are wall-clock "HH:MM";
// cross-midnight blocks are not representable.
type Block struct {
	Day   string `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}
