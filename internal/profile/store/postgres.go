package store

import (
	"context"
	"database/sql"
	"fmt"

	"vigia/internal/profile"
	id "vigia/pkg/domain"
)

// PostgresStore persists skills in coordinator_skills and zones in
// coordinator_geo_availability. Zone replacement runs in one transaction.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListSkills(ctx context.Context, coordinatorID id.CoordinatorID) ([]profile.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT skill_name, rating
		FROM coordinator_skills
		WHERE coordinator_id = $1
		ORDER BY skill_name`,
		coordinatorID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var skills []profile.Skill
	for rows.Next() {
		var skill profile.Skill
		if err := rows.Scan(&skill.Name, &skill.Rating); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (s *PostgresStore) UpsertSkill(ctx context.Context, coordinatorID id.CoordinatorID, skill profile.Skill) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO coordinator_skills (coordinator_id, skill_name, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (coordinator_id, skill_name) DO UPDATE SET rating = EXCLUDED.rating`,
		coordinatorID.String(), skill.Name, skill.Rating,
	)
	if err != nil {
		return fmt.Errorf("upsert skill: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListZones(ctx context.Context, coordinatorID id.CoordinatorID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT zone_name
		FROM coordinator_geo_availability
		WHERE coordinator_id = $1
		ORDER BY zone_name`,
		coordinatorID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query zones: %w", err)
	}
	defer rows.Close()

	var zones []string
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

func (s *PostgresStore) ReplaceZones(ctx context.Context, coordinatorID id.CoordinatorID, zones []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace zones: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM coordinator_geo_availability WHERE coordinator_id = $1`,
		coordinatorID.String(),
	); err != nil {
		return fmt.Errorf("clear zones: %w", err)
	}

	for _, zone := range zones {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO coordinator_geo_availability (coordinator_id, zone_name)
			VALUES ($1, $2)`,
			coordinatorID.String(), zone,
		); err != nil {
			return fmt.Errorf("insert zone: %w", err)
		}
	}
	return tx.Commit()
}
