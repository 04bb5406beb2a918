package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the statements applied by EnsureSchema, in order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS population_runs (
		id TEXT PRIMARY KEY,
		model_name TEXT NOT NULL,
		sim_name TEXT NOT NULL,
		seed BIGINT NOT NULL,
		redshift DOUBLE PRECISION NOT NULL,
		halo_count INTEGER NOT NULL DEFAULT 0,
		galaxy_count INTEGER NOT NULL DEFAULT 0,
		threshold DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_population_runs_created_at
		ON population_runs (created_at DESC)`,
}

// EnsureSchema creates the tables this package needs if they do not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
