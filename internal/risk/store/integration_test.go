//go:build integration

package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/risk"
	"vigia/internal/risk/store"
	id "vigia/pkg/domain"
	"vigia/pkg/testutil/containers"
)

func TestPostgresSourcesIntegration(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	sources := store.NewPostgresSources(pg.DB)

	coordinatorID := id.NewCoordinatorID()
	_, err := pg.DB.ExecContext(ctx, `
		INSERT INTO coord_scorecamina (coordinator_id, streak_count, gamification_paused, metrics_json)
		VALUES ($1, 0, false, '{"gps_verified": false}')`,
		coordinatorID.String())
	require.NoError(t, err)

	walkID := id.NewWalkID()
	_, err = pg.DB.ExecContext(ctx, `
		INSERT INTO walk_ledger_links (walk_id, gps_verified, participants_count, max_capacity)
		VALUES ($1, true, 5, 10)`,
		walkID.String())
	require.NoError(t, err)

	_, err = pg.DB.ExecContext(ctx, `
		INSERT INTO economic_events (id, actor_id, reviewed_flag, hash, prev_hash) VALUES
		(2, 'actor-2', true, 'h2', 'h1'),
		(1, 'actor-1', true, 'h1', NULL)`)
	require.NoError(t, err)

	coordinators, err := sources.ListCoordinators(ctx)
	require.NoError(t, err)
	require.Len(t, coordinators, 1)
	assert.Equal(t, coordinatorID, coordinators[0].CoordinatorID)
	require.NotNil(t, coordinators[0].Metrics)
	require.NotNil(t, coordinators[0].Metrics.GPSVerified)
	assert.False(t, *coordinators[0].Metrics.GPSVerified)

	walks, err := sources.ListWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, walkID, walks[0].WalkID)
	assert.Equal(t, 5, walks[0].ParticipantsCount)

	// Order by id ascending regardless of insert order; NULL prev_hash
	// surfaces as the empty string.
	events, err := sources.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, id.EventID(1), events[0].ID)
	assert.Equal(t, "", events[0].PrevHash)
	assert.Equal(t, "h1", events[1].PrevHash)

	report := risk.VerifyChain(events)
	assert.True(t, report.OK)
}

func TestRedisSummaryCacheIntegration(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := store.NewRedisSummaryCache(rc.Client, time.Minute, logger)

	_, ok := cache.GetSummary(ctx)
	assert.False(t, ok)

	summary := &risk.Summary{
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Domains: map[risk.Domain]map[string]int{
			risk.DomainCoordinators: {"CRITICAL": 2, "OK": 7},
		},
	}
	cache.SetSummary(ctx, summary)

	got, ok := cache.GetSummary(ctx)
	require.True(t, ok)
	assert.Equal(t, summary.Domains, got.Domains)
	assert.True(t, summary.GeneratedAt.Equal(got.GeneratedAt))
}

func TestRedisSummaryCacheExpiry(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := store.NewRedisSummaryCache(rc.Client, 100*time.Millisecond, logger)

	cache.SetSummary(ctx, &risk.Summary{GeneratedAt: time.Now()})
	time.Sleep(200 * time.Millisecond)

	_, ok := cache.GetSummary(ctx)
	assert.False(t, ok)
}
