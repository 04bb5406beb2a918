// Package composite bundles component galaxy-property models into composite
// subhalo models ready for mock population.
package composite

import (
	"github.com/ShuleiCao/halotools/domain/galprop"
	"github.com/ShuleiCao/halotools/internal/defaults"
	"github.com/ShuleiCao/halotools/internal/factory"
	"github.com/ShuleiCao/halotools/internal/models/assembias"
	"github.com/ShuleiCao/halotools/internal/models/sfr"
	"github.com/ShuleiCao/halotools/internal/models/smhm"
)

// SmHmBuilder produces a stellar-to-halo-mass component model from a config.
// Substituting a builder swaps the SMHM relation without touching the rest
// of the composite.
type SmHmBuilder func(cfg smhm.Config) (galprop.ComponentModel, error)

// SmHmBinarySFRConfig configures NewSmHmBinarySFR. Start from
// DefaultSmHmBinarySFRConfig when overriding only a few fields; a
// zero-value config is usable because PrimHaloprop, SmHmBuilder, and the
// quiescent-fraction control points fall back to the canonical defaults
// when left empty.
type SmHmBinarySFRConfig struct {
	// PrimHaloprop is the halo property driving both component models.
	PrimHaloprop string

	// SmHmBuilder produces the stellar mass component. Default is the
	// Behroozi et al. (2010) relation.
	SmHmBuilder SmHmBuilder

	// ScatterLevel is the constant log-normal stellar mass scatter in dex,
	// anchored at log10 halo mass 12.
	ScatterLevel float64

	// Redshift at which the stellar-to-halo-mass relation is evaluated.
	Redshift float64

	// SFRAbcissa and SFROrdinates give the quiescent-fraction control
	// points. Abcissa values are log10 halo property when LogParam is set.
	SFRAbcissa   []float64
	SFROrdinates []float64

	// LogParam selects quiescent-fraction interpolation in log10 of the
	// primary halo property. It is honored as given whenever custom
	// control points are supplied; it only falls back to true together
	// with the default control points, when both slices are nil.
	LogParam bool

	// Threshold, when present, attaches a stellar mass lower bound to the
	// composite: only galaxies above it survive population.
	Threshold *float64

	// AssemBias, when present, decorates the quiescent designation with
	// step-function assembly bias on a secondary halo property.
	AssemBias *assembias.Config

	// SmHmOptions and SFROptions forward family-specific knobs to the two
	// component constructors.
	SmHmOptions smhm.Options
	SFROptions  sfr.Options
}

// DefaultSmHmBinarySFRConfig returns the canonical configuration: the
// Behroozi10 relation at redshift zero with 0.2 dex scatter, and a
// quiescent fraction rising from 25% in Milky Way halos to 75% in
// clusters, interpolated in log10 halo mass.
func DefaultSmHmBinarySFRConfig() SmHmBinarySFRConfig {
	return SmHmBinarySFRConfig{
		PrimHaloprop: defaults.PrimHaloprop,
		SmHmBuilder:  Behroozi10Builder,
		ScatterLevel: defaults.ScatterLevel,
		Redshift:     defaults.Redshift,
		SFRAbcissa:   defaults.SFRAbcissa(),
		SFROrdinates: defaults.SFROrdinates(),
		LogParam:     true,
	}
}

// NewSmHmBinarySFR assembles a composite model assigning stellar mass and a
// binary quiescent/star-forming designation to every (sub)halo.
//
// The two component models are constructed from the shared primary halo
// property, bundled into a blueprint keyed by their declared property
// names, and handed to the subhalo model factory. Errors from the component
// constructors and the factory propagate unchanged.
func NewSmHmBinarySFR(cfg SmHmBinarySFRConfig) (*factory.SubhaloModel, error) {
	if cfg.PrimHaloprop == "" {
		cfg.PrimHaloprop = defaults.PrimHaloprop
	}
	if cfg.SmHmBuilder == nil {
		cfg.SmHmBuilder = Behroozi10Builder
	}
	if cfg.SFRAbcissa == nil && cfg.SFROrdinates == nil {
		cfg.SFRAbcissa = defaults.SFRAbcissa()
		cfg.SFROrdinates = defaults.SFROrdinates()
		cfg.LogParam = true
	}

	sfrModel, err := sfr.New(sfr.Config{
		PrimHaloprop: cfg.PrimHaloprop,
		Abcissa:      cfg.SFRAbcissa,
		Ordinates:    cfg.SFROrdinates,
		LogParam:     cfg.LogParam,
		Options:      cfg.SFROptions,
	})
	if err != nil {
		return nil, err
	}
	var designation galprop.ComponentModel = sfrModel
	if cfg.AssemBias != nil {
		designation, err = assembias.Decorate(sfrModel, *cfg.AssemBias)
		if err != nil {
			return nil, err
		}
	}

	smModel, err := cfg.SmHmBuilder(smhm.Config{
		PrimHaloprop:     cfg.PrimHaloprop,
		Redshift:         cfg.Redshift,
		ScatterAbcissa:   []float64{defaults.ScatterAnchor},
		ScatterOrdinates: []float64{cfg.ScatterLevel},
		Options:          cfg.SmHmOptions,
	})
	if err != nil {
		return nil, err
	}

	blueprint := galprop.NewBlueprint()
	if err := blueprint.Add(smModel); err != nil {
		return nil, err
	}
	if err := blueprint.Add(designation); err != nil {
		return nil, err
	}

	opts := []factory.Option{factory.WithName("smhm_binary_sfr")}
	if cfg.Threshold != nil {
		opts = append(opts, factory.WithSelection(galprop.StellarMassThreshold(*cfg.Threshold)))
	}
	return factory.NewSubhaloModel(blueprint, opts...)
}
