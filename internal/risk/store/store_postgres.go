// Package store provides the SQL-backed record sources for the risk module.
// Table names match the upstream product schema: coordinator scorecards live
// in coord_scorecamina, walk logistics in walk_ledger_links, and the economic
// ledger in economic_events.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vigia/internal/risk"
	id "vigia/pkg/domain"
)

// PostgresSources implements the three risk record sources over PostgreSQL.
type PostgresSources struct {
	db *sql.DB
}

// NewPostgresSources constructs the SQL-backed sources.
func NewPostgresSources(db *sql.DB) *PostgresSources {
	return &PostgresSources{db: db}
}

func (s *PostgresSources) ListCoordinators(ctx context.Context) ([]risk.CoordinatorRecord, error) {
	query := `
		SELECT coordinator_id, streak_count, gamification_paused, metrics_json
		FROM coord_scorecamina
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query coordinators: %w", err)
	}
	defer rows.Close()

	var records []risk.CoordinatorRecord
	for rows.Next() {
		var (
			rawID       string
			streak      int
			paused      bool
			metricsJSON sql.NullString
		)
		if err := rows.Scan(&rawID, &streak, &paused, &metricsJSON); err != nil {
			return nil, fmt.Errorf("scan coordinator row: %w", err)
		}

		coordID, err := id.ParseCoordinatorID(rawID)
		if err != nil {
			return nil, fmt.Errorf("coordinator row %s: %w", rawID, err)
		}

		rec := risk.CoordinatorRecord{
			CoordinatorID:      coordID,
			StreakCount:        streak,
			GamificationPaused: paused,
		}
		if metricsJSON.Valid && metricsJSON.String != "" {
			var metrics risk.CoordinatorMetrics
			if err := json.Unmarshal([]byte(metricsJSON.String), &metrics); err != nil {
				return nil, fmt.Errorf("coordinator %s metrics: %w", rawID, err)
			}
			rec.Metrics = &metrics
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PostgresSources) ListWalks(ctx context.Context) ([]risk.WalkRecord, error) {
	query := `
		SELECT walk_id, gps_verified, participants_count, max_capacity, created_at
		FROM walk_ledger_links
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query walks: %w", err)
	}
	defer rows.Close()

	var records []risk.WalkRecord
	for rows.Next() {
		var (
			rawID string
			rec   risk.WalkRecord
		)
		if err := rows.Scan(&rawID, &rec.GPSVerified, &rec.ParticipantsCount, &rec.MaxCapacity, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan walk row: %w", err)
		}
		walkID, err := id.ParseWalkID(rawID)
		if err != nil {
			return nil, fmt.Errorf("walk row %s: %w", rawID, err)
		}
		rec.WalkID = walkID
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListEvents returns the ledger ordered by id ascending; chain verification
// depends on this order.
func (s *PostgresSources) ListEvents(ctx context.Context) ([]risk.EconomicEvent, error) {
	query := `
		SELECT id, actor_id, reviewed_flag, hash, COALESCE(prev_hash, ''), created_at
		FROM economic_events
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query economic events: %w", err)
	}
	defer rows.Close()

	var events []risk.EconomicEvent
	for rows.Next() {
		var (
			rawID int64
			evt   risk.EconomicEvent
		)
		if err := rows.Scan(&rawID, &evt.ActorID, &evt.Reviewed, &evt.Hash, &evt.PrevHash, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan economic event: %w", err)
		}
		evt.ID = id.EventID(rawID)
		events = append(events, evt)
	}
	return events, rows.Err()
}
