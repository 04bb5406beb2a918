package ports

import (
	"context"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/models"
)

// RunRepository persists population-run records.
type RunRepository interface {
	Create(ctx context.Context, run *models.PopulationRun) error
	GetByID(ctx context.Context, id core.RunID) (*models.PopulationRun, error)
	List(ctx context.Context, limit, offset int) ([]*models.PopulationRun, error)
}
