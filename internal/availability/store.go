package availability

import (
	"context"

	id "vigia/pkg/domain"
)

// Store persists a coordinator's schedule. ReplaceBlocks swaps the full set
// atomically; a reader never observes the empty window between delete and
// insert.
type Store interface {
	ListBlocks(ctx context.Context, coordinatorID id.CoordinatorID) ([]Block, error)
	ReplaceBlocks(ctx context.Context, coordinatorID id.CoordinatorID, blocks []Block) error
}

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks
