package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vigia/internal/audit"
	id "vigia/pkg/domain"
	txcontext "vigia/pkg/platform/tx"
)

// PostgresStore persists audit events in coordinator_panel_logs, the same
// table the panel writes, so existing log views keep working.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Append(ctx context.Context, event audit.Event) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	_, err = s.execer(ctx).ExecContext(ctx, `
		INSERT INTO coordinator_panel_logs (id, coordinator_id, action, details, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.CoordinatorID.String(), string(event.Action), details, event.RequestID, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert panel log: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCoordinator(ctx context.Context, coordinatorID id.CoordinatorID) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, coordinator_id, action, details, request_id, created_at
		FROM coordinator_panel_logs
		WHERE coordinator_id = $1
		ORDER BY created_at ASC`,
		coordinatorID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query panel logs: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event       audit.Event
			coordinator string
			action      string
			details     []byte
		)
		if err := rows.Scan(&event.ID, &coordinator, &action, &details, &event.RequestID, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan panel log: %w", err)
		}
		cid, err := id.ParseCoordinatorID(coordinator)
		if err != nil {
			return nil, fmt.Errorf("parse coordinator id: %w", err)
		}
		event.CoordinatorID = cid
		event.Action = audit.Action(action)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &event.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
