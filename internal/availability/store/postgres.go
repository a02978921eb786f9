package store

import (
	"context"
	"database/sql"
	"fmt"

	"vigia/internal/availability"
	id "vigia/pkg/domain"
)

// PostgresStore persists schedules in coordinator_availability. The replace
// runs delete+insert inside one transaction so readers never see the empty
// set between the two statements.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListBlocks(ctx context.Context, coordinatorID id.CoordinatorID) ([]availability.Block, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, start_time, end_time
		FROM coordinator_availability
		WHERE coordinator_id = $1
		ORDER BY day, start_time`,
		coordinatorID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}
	defer rows.Close()

	var blocks []availability.Block
	for rows.Next() {
		var block availability.Block
		if err := rows.Scan(&block.Day, &block.Start, &block.End); err != nil {
			return nil, fmt.Errorf("scan availability block: %w", err)
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

func (s *PostgresStore) ReplaceBlocks(ctx context.Context, coordinatorID id.CoordinatorID, blocks []availability.Block) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace availability: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM coordinator_availability WHERE coordinator_id = $1`,
		coordinatorID.String(),
	); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}

	for _, block := range blocks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO coordinator_availability (coordinator_id, day, start_time, end_time)
			VALUES ($1, $2, $3, $4)`,
			coordinatorID.String(), block.Day, block.Start, block.End,
		); err != nil {
			return fmt.Errorf("insert availability block: %w", err)
		}
	}
	return tx.Commit()
}
