package ui

import (
	"github.com/ShuleiCao/halotools/app"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal/composite"
	"github.com/ShuleiCao/halotools/internal/factory"
	"github.com/ShuleiCao/halotools/internal/models/assembias"
	"github.com/ShuleiCao/halotools/models"
)

// PopulateRequest is the JSON payload accepted by POST /api/populate.
// Omitted fields use the canonical SmHmBinarySFR defaults.
type PopulateRequest struct {
	Seed         int64     `json:"seed"`
	SmHmModel    string    `json:"smhm_model,omitempty"` // "behroozi10" or "moster13"
	ScatterLevel *float64  `json:"scatter_level,omitempty"`
	Redshift     *float64  `json:"redshift,omitempty"`
	SFRAbcissa   []float64 `json:"sfr_abcissa,omitempty"`
	SFROrdinates []float64 `json:"sfr_ordinates,omitempty"`
	LogParam     *bool     `json:"logparam,omitempty"`
	Threshold    *float64  `json:"threshold,omitempty"`

	// Assembly bias decoration of the quiescent designation. Strength
	// activates it; split and secondary property are optional refinements.
	AssembiasStrength *float64 `json:"assembias_strength,omitempty"`
	AssembiasSplit    *float64 `json:"assembias_split,omitempty"`
	SecHaloprop       string   `json:"sec_haloprop,omitempty"`
}

// BuildModel turns the request into a composite subhalo model.
func (r *PopulateRequest) BuildModel() (*factory.SubhaloModel, error) {
	cfg := composite.DefaultSmHmBinarySFRConfig()

	builder, err := composite.SmHmBuilderByName(r.SmHmModel)
	if err != nil {
		return nil, err
	}
	cfg.SmHmBuilder = builder

	if r.ScatterLevel != nil {
		cfg.ScatterLevel = *r.ScatterLevel
	}
	if r.Redshift != nil {
		cfg.Redshift = *r.Redshift
	}
	if r.SFRAbcissa != nil {
		cfg.SFRAbcissa = r.SFRAbcissa
	}
	if r.SFROrdinates != nil {
		cfg.SFROrdinates = r.SFROrdinates
	}
	if r.LogParam != nil {
		cfg.LogParam = *r.LogParam
	}
	cfg.Threshold = r.Threshold

	if r.AssembiasStrength != nil {
		bias := assembias.Config{
			Strength:    *r.AssembiasStrength,
			SecHaloprop: r.SecHaloprop,
		}
		if r.AssembiasSplit != nil {
			bias.SplitFraction = *r.AssembiasSplit
		}
		cfg.AssemBias = &bias
	}

	return composite.NewSmHmBinarySFR(cfg)
}

// PopulateResponse summarizes a population run for API clients.
type PopulateResponse struct {
	Run               *models.PopulationRun `json:"run"`
	QuiescentFraction float64               `json:"quiescent_fraction"`
	SampleGalaxies    []halo.Galaxy         `json:"sample_galaxies"`
}

// NewPopulateResponse builds the response from a service result, including
// a small sample of the populated galaxies.
func NewPopulateResponse(result *app.PopulateResult) PopulateResponse {
	const sampleSize = 10

	quiescent := 0
	for _, g := range result.Catalog.Galaxies {
		if g.Quiescent {
			quiescent++
		}
	}
	fraction := 0.0
	if n := result.Catalog.Len(); n > 0 {
		fraction = float64(quiescent) / float64(n)
	}

	sample := result.Catalog.Galaxies
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	return PopulateResponse{
		Run:               result.Run,
		QuiescentFraction: fraction,
		SampleGalaxies:    sample,
	}
}
