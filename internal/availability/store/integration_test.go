//go:build integration

package store_test

import (
	"context"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/availability"
	"vigia/internal/availability/store"
	id "vigia/pkg/domain"
	"vigia/pkg/testutil/containers"
)

func TestPostgresStoreReplaceBlocksIntegration(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	st := store.NewPostgresStore(pg.DB)

	coordinatorID := id.NewCoordinatorID()
	first := []availability.Block{
		{Day: "martes", Start: "14:00", End: "18:00"},
		{Day: "lunes", Start: "09:00", End: "12:00"},
	}
	require.NoError(t, st.ReplaceBlocks(ctx, coordinatorID, first))

	blocks, err := st.ListBlocks(ctx, coordinatorID)
	require.NoError(t, err)
	// Listing orders by (day, start_time) regardless of insert order.
	assert.Equal(t, []availability.Block{
		{Day: "lunes", Start: "09:00", End: "12:00"},
		{Day: "martes", Start: "14:00", End: "18:00"},
	}, blocks)

	// Replacing with an empty set clears the schedule.
	require.NoError(t, st.ReplaceBlocks(ctx, coordinatorID, nil))
	blocks, err = st.ListBlocks(ctx, coordinatorID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestPostgresStoreIsolatesCoordinatorsIntegration(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	st := store.NewPostgresStore(pg.DB)

	a := id.NewCoordinatorID()
	b := id.NewCoordinatorID()
	require.NoError(t, st.ReplaceBlocks(ctx, a, []availability.Block{{Day: "lunes", Start: "08:00", End: "10:00"}}))
	require.NoError(t, st.ReplaceBlocks(ctx, b, []availability.Block{{Day: "viernes", Start: "16:00", End: "20:00"}}))

	blocks, err := st.ListBlocks(ctx, a)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "lunes", blocks[0].Day)
}
