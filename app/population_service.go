// Package app wires the domain and adapters into application services.
package app

import (
	"context"
	"fmt"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal"
	"github.com/ShuleiCao/halotools/internal/factory"
	"github.com/ShuleiCao/halotools/models"
	"github.com/ShuleiCao/halotools/ports"
)

// PopulationService orchestrates mock population: load a halo catalog,
// populate it with a composite model, record the run, and optionally
// export the result.
type PopulationService struct {
	source   ports.CatalogSource
	rng      ports.RNGPort
	runs     ports.RunRepository   // optional
	exporter ports.CatalogExporter // optional
	logger   *internal.Logger
}

// NewPopulationService creates a population service. The run repository and
// exporter may be nil; persistence and export are then skipped.
func NewPopulationService(source ports.CatalogSource, rng ports.RNGPort, runs ports.RunRepository, exporter ports.CatalogExporter) *PopulationService {
	return &PopulationService{
		source:   source,
		rng:      rng,
		runs:     runs,
		exporter: exporter,
		logger:   internal.DefaultLogger.Named("population"),
	}
}

// PopulateRequest describes one population execution.
type PopulateRequest struct {
	Model      *factory.SubhaloModel
	Seed       int64
	Threshold  *float64 // recorded on the run when the model filters on stellar mass
	ExportPath string   // optional
}

// PopulateResult bundles the run record with the populated catalog.
type PopulateResult struct {
	Run     *models.PopulationRun
	Catalog *halo.GalaxyCatalog
}

// Populate runs the full population pipeline for one request.
func (s *PopulationService) Populate(ctx context.Context, req PopulateRequest) (*PopulateResult, error) {
	if req.Model == nil {
		return nil, core.NewConfigError("model", "no composite model supplied")
	}

	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load halo catalog: %w", err)
	}
	s.logger.Info("populating %q over %d halos (seed %d)", req.Model.Name(), catalog.Len(), req.Seed)

	mock, err := req.Model.PopulateMock(ctx, s.rng, catalog, req.Seed)
	if err != nil {
		return nil, err
	}

	run := models.NewPopulationRun(req.Model.Name(), catalog.SimName, req.Seed, catalog.Redshift)
	run.ID = mock.RunID
	run.HaloCount = catalog.Len()
	run.GalaxyCount = mock.Len()
	run.Threshold = req.Threshold

	if s.runs != nil {
		if err := s.runs.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("record population run: %w", err)
		}
	}
	if req.ExportPath != "" && s.exporter != nil {
		if err := s.exporter.Export(ctx, mock, req.ExportPath); err != nil {
			return nil, fmt.Errorf("export galaxy catalog: %w", err)
		}
	}

	return &PopulateResult{Run: run, Catalog: mock}, nil
}

// GetRun fetches a recorded population run.
func (s *PopulationService) GetRun(ctx context.Context, id core.RunID) (*models.PopulationRun, error) {
	if s.runs == nil {
		return nil, core.ErrRunNotFound
	}
	return s.runs.GetByID(ctx, id)
}

// ListRuns lists recorded population runs, newest first.
func (s *PopulationService) ListRuns(ctx context.Context, limit, offset int) ([]*models.PopulationRun, error) {
	if s.runs == nil {
		return []*models.PopulationRun{}, nil
	}
	return s.runs.List(ctx, limit, offset)
}
