package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"vigia/internal/risk"
	"vigia/pkg/platform/circuit"
)

const summaryKey = "vigia:alerts:summary"

// RedisSummaryCache caches the aggregated severity counts between dashboard
// refreshes. Cache failures are logged and otherwise invisible: a broken
// cache degrades to recomputation, never to an error. A circuit breaker
// stops reads from piling onto Redis while it is down; writes keep probing
// so the breaker closes again once Redis recovers.
type RedisSummaryCache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	breaker *circuit.Breaker
}

// NewRedisSummaryCache constructs the cache with the given freshness window.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSummaryCache {
	return &RedisSummaryCache{
		client:  client,
		ttl:     ttl,
		logger:  logger,
		breaker: circuit.New("summary-cache", circuit.WithFailureThreshold(3)),
	}
}

func (c *RedisSummaryCache) GetSummary(ctx context.Context) (*risk.Summary, bool) {
	if c.breaker.IsOpen() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "summary cache read failed", "error", err)
			c.recordFailure(ctx)
		} else {
			c.recordSuccess(ctx)
		}
		return nil, false
	}
	c.recordSuccess(ctx)

	var summary risk.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.logger.WarnContext(ctx, "summary cache entry corrupt, dropping", "error", err)
		_ = c.client.Del(ctx, summaryKey).Err()
		return nil, false
	}
	return &summary, true
}

func (c *RedisSummaryCache) SetSummary(ctx context.Context, s *risk.Summary) {
	raw, err := json.Marshal(s)
	if err != nil {
		c.logger.WarnContext(ctx, "summary cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, summaryKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "summary cache write failed", "error", err)
		c.recordFailure(ctx)
		return
	}
	c.recordSuccess(ctx)
}

func (c *RedisSummaryCache) recordFailure(ctx context.Context) {
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "summary cache breaker opened, skipping reads", "breaker", c.breaker.Name())
	}
}

func (c *RedisSummaryCache) recordSuccess(ctx context.Context) {
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "summary cache breaker closed", "breaker", c.breaker.Name())
	}
}
