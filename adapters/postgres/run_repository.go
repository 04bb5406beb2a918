// Package postgres persists population-run records.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/models"
	"github.com/ShuleiCao/halotools/ports"
)

// RunRepositoryImpl implements RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// Create inserts a population-run record
func (r *RunRepositoryImpl) Create(ctx context.Context, run *models.PopulationRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO population_runs (id, model_name, sim_name, seed, redshift, halo_count, galaxy_count, threshold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.ModelName, run.SimName, run.Seed, run.Redshift, run.HaloCount, run.GalaxyCount, run.Threshold, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert population run: %w", err)
	}
	return nil
}

// GetByID fetches a single run record
func (r *RunRepositoryImpl) GetByID(ctx context.Context, id core.RunID) (*models.PopulationRun, error) {
	var run models.PopulationRun
	err := r.db.GetContext(ctx, &run, `
		SELECT id, model_name, sim_name, seed, redshift, halo_count, galaxy_count, threshold, created_at
		FROM population_runs WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("population run", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns run records ordered by creation time, newest first
func (r *RunRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*models.PopulationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	runs := []*models.PopulationRun{}
	err := r.db.SelectContext(ctx, &runs, `
		SELECT id, model_name, sim_name, seed, redshift, halo_count, galaxy_count, threshold, created_at
		FROM population_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	return runs, nil
}
