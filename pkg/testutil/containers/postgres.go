//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// schema is the subset of the production tables exercised by the stores.
const schema = `
CREATE TABLE coordinadores (
	id UUID PRIMARY KEY,
	score INTEGER
);

CREATE TABLE coordinadores_bio (
	coordinator_id UUID PRIMARY KEY,
	motivacion_json TEXT
);

CREATE TABLE coord_scorecamina (
	coordinator_id UUID PRIMARY KEY,
	streak_count INTEGER NOT NULL DEFAULT 0,
	gamification_paused BOOLEAN NOT NULL DEFAULT FALSE,
	metrics_json TEXT
);

CREATE TABLE walk_ledger_links (
	walk_id UUID PRIMARY KEY,
	gps_verified BOOLEAN NOT NULL DEFAULT FALSE,
	participants_count INTEGER NOT NULL DEFAULT 0,
	max_capacity INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE economic_events (
	id BIGINT PRIMARY KEY,
	actor_id TEXT NOT NULL DEFAULT '',
	reviewed_flag BOOLEAN NOT NULL DEFAULT FALSE,
	hash TEXT NOT NULL DEFAULT '',
	prev_hash TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE coordinator_skills (
	coordinator_id UUID NOT NULL,
	skill_name TEXT NOT NULL,
	rating INTEGER NOT NULL,
	PRIMARY KEY (coordinator_id, skill_name)
);

CREATE TABLE coordinator_availability (
	coordinator_id UUID NOT NULL,
	day TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL
);

CREATE TABLE coordinator_geo_availability (
	coordinator_id UUID NOT NULL,
	zone_name TEXT NOT NULL
);

CREATE TABLE coordinator_panel_logs (
	id UUID PRIMARY KEY,
	coordinator_id UUID NOT NULL,
	action TEXT NOT NULL,
	details JSONB,
	request_id TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// PostgresContainer wraps a testcontainers Postgres instance with the
// schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts a Postgres container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("vigia"),
		tcpostgres.WithUsername("vigia"),
		tcpostgres.WithPassword("vigia"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = container.Terminate(ctx)
	})

	return &PostgresContainer{Container: container, URL: url, DB: db}
}

// Truncate clears all rows between tests.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, `
		TRUNCATE coordinadores, coordinadores_bio, coord_scorecamina,
			walk_ledger_links, economic_events, coordinator_skills,
			coordinator_availability, coordinator_geo_availability,
			coordinator_panel_logs`)
	return err
}
