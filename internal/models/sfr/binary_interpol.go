// Package sfr implements star-formation-rate designation component models.
package sfr

import (
	"context"
	"math/rand"

	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal/defaults"
	"github.com/ShuleiCao/halotools/internal/models/curve"
)

// Options holds the optional knobs of the binary SFR model family.
type Options struct {
	// GalpropName overrides the property name the model declares.
	// Default is "quiescent".
	GalpropName string
}

// Config configures a BinaryInterpolModel.
type Config struct {
	PrimHaloprop string
	// Abcissa gives the control point locations in halo-property units, or
	// in log10 of the property when LogParam is set.
	Abcissa []float64
	// Ordinates gives the quiescent fraction at each control point,
	// each in [0, 1].
	Ordinates []float64
	// LogParam selects interpolation in log10 of the primary halo property.
	LogParam bool
	Options  Options
}

// BinaryInterpolModel assigns a binary quiescent/star-forming designation
// by interpolating the quiescent fraction between control points and
// drawing a Monte Carlo realization per galaxy.
type BinaryInterpolModel struct {
	galpropName  string
	primHaloprop string
	fraction     *curve.Curve
	logParam     bool
}

// New builds a binary SFR designation model from control points.
func New(cfg Config) (*BinaryInterpolModel, error) {
	if cfg.PrimHaloprop == "" {
		cfg.PrimHaloprop = defaults.PrimHaloprop
	}
	if cfg.Options.GalpropName == "" {
		cfg.Options.GalpropName = defaults.QuiescentGalprop
	}
	fraction, err := curve.NewFraction(cfg.Abcissa, cfg.Ordinates, cfg.LogParam)
	if err != nil {
		return nil, err
	}
	return &BinaryInterpolModel{
		galpropName:  cfg.Options.GalpropName,
		primHaloprop: cfg.PrimHaloprop,
		fraction:     fraction,
		logParam:     cfg.LogParam,
	}, nil
}

// GalpropName returns the property this model assigns.
func (m *BinaryInterpolModel) GalpropName() string { return m.galpropName }

// PrimHaloprop returns the halo property driving the assignment.
func (m *BinaryInterpolModel) PrimHaloprop() string { return m.primHaloprop }

// LogParam reports whether interpolation happens in log10 of the property.
func (m *BinaryInterpolModel) LogParam() bool { return m.logParam }

// Abcissa returns a copy of the control point locations.
func (m *BinaryInterpolModel) Abcissa() []float64 { return m.fraction.Abcissa() }

// Ordinates returns a copy of the control point fractions.
func (m *BinaryInterpolModel) Ordinates() []float64 { return m.fraction.Ordinates() }

// MeanFraction returns the interpolated quiescent fraction at the given
// value of the primary halo property, in linear units.
func (m *BinaryInterpolModel) MeanFraction(primHaloprop float64) float64 {
	return m.fraction.Eval(primHaloprop)
}

// Assign draws a quiescent designation for every galaxy.
func (m *BinaryInterpolModel) Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error {
	col, err := catalog.Column(m.primHaloprop)
	if err != nil {
		return err
	}
	for i := range galaxies {
		if err := ctx.Err(); err != nil {
			return err
		}
		galaxies[i].Quiescent = stream.Float64() < m.MeanFraction(col[i])
	}
	return nil
}
