package risk

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

import "context"

// Sources are interface-driven so the evaluators stay pure and the service
// can be tested against mocks; the SQL-backed implementations live in the
// store subpackage.

// CoordinatorSource supplies the current coordinator scorecard rows.
type CoordinatorSource interface {
	ListCoordinators(ctx context.Context) ([]CoordinatorRecord, error)
}

// WalkSource supplies the current walk logistics rows.
type WalkSource interface {
	ListWalks(ctx context.Context) ([]WalkRecord, error)
}

// LedgerSource supplies the economic events ordered by id ascending.
type LedgerSource interface {
	ListEvents(ctx context.Context) ([]EconomicEvent, error)
}

// SummaryCache optionally caches the aggregated severity counts between
// dashboard refreshes. A nil cache disables caching.
type SummaryCache interface {
	GetSummary(ctx context.Context) (*Summary, bool)
	SetSummary(ctx context.Context, s *Summary)
}
