// Package smhm implements stellar-to-halo-mass relation component models.
// Each model maps a primary halo property to a mean stellar mass and applies
// log-normal scatter interpolated between control points.
package smhm

import (
	"github.com/ShuleiCao/halotools/internal/defaults"
)

// Options holds the optional knobs common to the SMHM model family.
type Options struct {
	// GalpropName overrides the property name the model declares.
	// Default is "stellar_mass".
	GalpropName string

	// LogMstarGridMin and LogMstarGridMax bound the stellar mass grid used
	// when a relation must be numerically inverted. Zero values select the
	// defaults [8.0, 12.5].
	LogMstarGridMin float64
	LogMstarGridMax float64

	// GridPoints is the inversion grid resolution. Zero selects 200.
	GridPoints int
}

// Config configures a stellar-to-halo-mass component model.
type Config struct {
	PrimHaloprop     string
	Redshift         float64
	ScatterAbcissa   []float64 // log10 halo mass control points
	ScatterOrdinates []float64 // scatter level in dex at each control point
	Options          Options
}

func (c *Config) applyDefaults() {
	if c.PrimHaloprop == "" {
		c.PrimHaloprop = defaults.PrimHaloprop
	}
	if c.Options.GalpropName == "" {
		c.Options.GalpropName = defaults.StellarMassGalprop
	}
	if c.Options.LogMstarGridMin == 0 {
		c.Options.LogMstarGridMin = 8.0
	}
	if c.Options.LogMstarGridMax == 0 {
		c.Options.LogMstarGridMax = 12.5
	}
	if c.Options.GridPoints == 0 {
		c.Options.GridPoints = 200
	}
}
