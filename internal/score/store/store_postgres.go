// Package store provides the Postgres-backed scoring signal reads.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "vigia/pkg/domain"
	"vigia/pkg/platform/sentinel"
)

// PostgresProfile reads scoring signals from the coordinator profile tables.
// Missing rows read as zero signals rather than errors: a brand-new
// coordinator scores 0, it does not fail.
type PostgresProfile struct {
	db *sql.DB
}

func NewPostgresProfile(db *sql.DB) *PostgresProfile {
	return &PostgresProfile{db: db}
}

func (p *PostgresProfile) GetStreakCount(ctx context.Context, coordinatorID id.CoordinatorID) (int, error) {
	var streak int
	err := p.db.QueryRowContext(ctx,
		`SELECT streak_count FROM coord_scorecamina WHERE coordinator_id = $1`,
		coordinatorID.String(),
	).Scan(&streak)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query streak count: %w", err)
	}
	return streak, nil
}

func (p *PostgresProfile) GetMotivationDeclared(ctx context.Context, coordinatorID id.CoordinatorID) (bool, error) {
	var motivation sql.NullString
	err := p.db.QueryRowContext(ctx,
		`SELECT motivacion_json FROM coordinadores_bio WHERE coordinator_id = $1`,
		coordinatorID.String(),
	).Scan(&motivation)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query motivation: %w", err)
	}
	return motivation.Valid && motivation.String != "" && motivation.String != "null", nil
}

func (p *PostgresProfile) GetAverageSkillRating(ctx context.Context, coordinatorID id.CoordinatorID) (float64, error) {
	var avg sql.NullFloat64
	err := p.db.QueryRowContext(ctx,
		`SELECT AVG(rating) FROM coordinator_skills WHERE coordinator_id = $1`,
		coordinatorID.String(),
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("query average skill rating: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

func (p *PostgresProfile) CountAvailabilityBlocks(ctx context.Context, coordinatorID id.CoordinatorID) (int, error) {
	return p.count(ctx, "coordinator_availability", coordinatorID)
}

func (p *PostgresProfile) CountGeoZones(ctx context.Context, coordinatorID id.CoordinatorID) (int, error) {
	return p.count(ctx, "coordinator_geo_availability", coordinatorID)
}

func (p *PostgresProfile) count(ctx context.Context, table string, coordinatorID id.CoordinatorID) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE coordinator_id = $1`, table),
		coordinatorID.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// PostgresScoreWriter overwrites the persisted score on coordinadores.
type PostgresScoreWriter struct {
	db *sql.DB
}

func NewPostgresScoreWriter(db *sql.DB) *PostgresScoreWriter {
	return &PostgresScoreWriter{db: db}
}

func (w *PostgresScoreWriter) UpdateScore(ctx context.Context, coordinatorID id.CoordinatorID, score int) error {
	res, err := w.db.ExecContext(ctx,
		`UPDATE coordinadores SET score = $1 WHERE id = $2`,
		score, coordinatorID.String(),
	)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update score rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
