package smhm

import (
	"context"
	"math"
	"math/rand"

	"github.com/ShuleiCao/halotools/domain/halo"
)

// Moster13 assigns stellar mass from the double power-law
// stellar-to-halo-mass relation of Moster, Naab & White (2013), with the
// published redshift scaling of each parameter.
type Moster13 struct {
	galpropName  string
	primHaloprop string
	redshift     float64
	scatter      *LogNormalScatter

	// redshift-evaluated parameters
	logM1 float64 // characteristic halo mass
	norm  float64 // normalization N
	beta  float64 // low-mass slope
	gamma float64 // high-mass slope
}

// NewMoster13 constructs the model for the configured redshift.
func NewMoster13(cfg Config) (*Moster13, error) {
	cfg.applyDefaults()

	var scatter *LogNormalScatter
	if len(cfg.ScatterAbcissa) > 0 || len(cfg.ScatterOrdinates) > 0 {
		var err error
		scatter, err = NewLogNormalScatter(cfg.ScatterAbcissa, cfg.ScatterOrdinates)
		if err != nil {
			return nil, err
		}
	}

	zfrac := cfg.Redshift / (1 + cfg.Redshift)
	return &Moster13{
		galpropName:  cfg.Options.GalpropName,
		primHaloprop: cfg.PrimHaloprop,
		redshift:     cfg.Redshift,
		scatter:      scatter,
		logM1:        11.590 + 1.195*zfrac,
		norm:         0.0351 - 0.0247*zfrac,
		beta:         1.376 - 0.826*zfrac,
		gamma:        0.608 + 0.329*zfrac,
	}, nil
}

// GalpropName returns the property this model assigns.
func (m *Moster13) GalpropName() string { return m.galpropName }

// PrimHaloprop returns the halo property driving the assignment.
func (m *Moster13) PrimHaloprop() string { return m.primHaloprop }

// Redshift returns the redshift at which the relation is evaluated.
func (m *Moster13) Redshift() float64 { return m.redshift }

// MeanLogStellarMass returns the mean log10 stellar mass at log10 halo mass.
func (m *Moster13) MeanLogStellarMass(logMh float64) float64 {
	ratio := math.Pow(10, logMh-m.logM1)
	fraction := 2 * m.norm / (math.Pow(ratio, -m.beta) + math.Pow(ratio, m.gamma))
	return logMh + math.Log10(fraction)
}

// Assign draws a stellar mass for every galaxy.
func (m *Moster13) Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error {
	col, err := catalog.Column(m.primHaloprop)
	if err != nil {
		return err
	}
	for i := range galaxies {
		if err := ctx.Err(); err != nil {
			return err
		}
		logMh := math.Log10(col[i])
		mean := m.MeanLogStellarMass(logMh)
		dex := 0.0
		if m.scatter != nil {
			dex = m.scatter.Draw(stream, logMh)
		}
		galaxies[i].StellarMass = math.Pow(10, mean+dex)
	}
	return nil
}
