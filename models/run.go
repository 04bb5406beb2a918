package models

import (
	"time"

	"github.com/ShuleiCao/halotools/domain/core"
)

// PopulationRun records one mock-population execution: which composite
// model ran, against which simulation, with what seed, and what it produced.
type PopulationRun struct {
	ID          core.RunID `db:"id" json:"id"`
	ModelName   string     `db:"model_name" json:"model_name"`
	SimName     string     `db:"sim_name" json:"sim_name"`
	Seed        int64      `db:"seed" json:"seed"`
	Redshift    float64    `db:"redshift" json:"redshift"`
	HaloCount   int        `db:"halo_count" json:"halo_count"`
	GalaxyCount int        `db:"galaxy_count" json:"galaxy_count"`
	Threshold   *float64   `db:"threshold" json:"threshold,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// NewPopulationRun creates a run record with a fresh ID and timestamp.
func NewPopulationRun(modelName, simName string, seed int64, redshift float64) *PopulationRun {
	return &PopulationRun{
		ID:        core.NewRunID(),
		ModelName: modelName,
		SimName:   simName,
		Seed:      seed,
		Redshift:  redshift,
		CreatedAt: time.Now().UTC(),
	}
}
