package smhm

import (
	"context"
	"math"
	"math/rand"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal/models/curve"
)

// behroozi10Params holds the best-fit parameterization of Behroozi, Conroy
// & Wechsler (2010), with first-order scale factor evolution terms.
type behroozi10Params struct {
	logM0, logM0a float64
	logM1, logM1a float64
	beta, betaA   float64
	delta, deltaA float64
	gamma, gammaA float64
}

func defaultBehroozi10Params() behroozi10Params {
	return behroozi10Params{
		logM0: 10.72, logM0a: 0.59,
		logM1: 12.35, logM1a: 0.30,
		beta: 0.43, betaA: 0.18,
		delta: 0.56, deltaA: 0.18,
		gamma: 1.54, gammaA: 2.52,
	}
}

// Behroozi10 assigns stellar mass from the Behroozi et al. (2010)
// stellar-to-halo-mass relation. The published relation parameterizes halo
// mass as a function of stellar mass, so the mean relation is inverted
// numerically over a stellar mass grid at construction time.
type Behroozi10 struct {
	galpropName  string
	primHaloprop string
	redshift     float64
	scatter      *LogNormalScatter
	inverse      *curve.Curve // log10 Mh -> mean log10 M*
}

// NewBehroozi10 constructs the model for the configured redshift.
func NewBehroozi10(cfg Config) (*Behroozi10, error) {
	cfg.applyDefaults()

	var scatter *LogNormalScatter
	if len(cfg.ScatterAbcissa) > 0 || len(cfg.ScatterOrdinates) > 0 {
		var err error
		scatter, err = NewLogNormalScatter(cfg.ScatterAbcissa, cfg.ScatterOrdinates)
		if err != nil {
			return nil, err
		}
	}

	inverse, err := invertedMeanRelation(defaultBehroozi10Params(), cfg)
	if err != nil {
		return nil, err
	}

	return &Behroozi10{
		galpropName:  cfg.Options.GalpropName,
		primHaloprop: cfg.PrimHaloprop,
		redshift:     cfg.Redshift,
		scatter:      scatter,
		inverse:      inverse,
	}, nil
}

// invertedMeanRelation tabulates log10 Mh over a stellar mass grid and fits
// the inverse mapping.
func invertedMeanRelation(p behroozi10Params, cfg Config) (*curve.Curve, error) {
	a := 1.0 / (1.0 + cfg.Redshift)
	logM0 := p.logM0 + p.logM0a*(a-1)
	logM1 := p.logM1 + p.logM1a*(a-1)
	beta := p.beta + p.betaA*(a-1)
	delta := p.delta + p.deltaA*(a-1)
	gamma := p.gamma + p.gammaA*(a-1)

	n := cfg.Options.GridPoints
	lo, hi := cfg.Options.LogMstarGridMin, cfg.Options.LogMstarGridMax
	if hi <= lo {
		return nil, core.NewConfigError("log_mstar_grid", "grid max must exceed grid min")
	}

	logMstar := make([]float64, n)
	logMh := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		ms := lo + float64(i)*step
		x := ms - logM0
		r := math.Pow(10, x)
		logMstar[i] = ms
		logMh[i] = logM1 + beta*x + math.Pow(r, delta)/(1+math.Pow(r, -gamma)) - 0.5
	}
	// The relation must be monotonic for the inversion to be well defined.
	for i := 1; i < n; i++ {
		if logMh[i] <= logMh[i-1] {
			return nil, core.NewConfigError("behroozi10", "mean relation is not monotonic over the stellar mass grid")
		}
	}
	return curve.New(logMh, logMstar, false)
}

// GalpropName returns the property this model assigns.
func (m *Behroozi10) GalpropName() string { return m.galpropName }

// PrimHaloprop returns the halo property driving the assignment.
func (m *Behroozi10) PrimHaloprop() string { return m.primHaloprop }

// Redshift returns the redshift at which the relation is evaluated.
func (m *Behroozi10) Redshift() float64 { return m.redshift }

// MeanLogStellarMass returns the mean log10 stellar mass at log10 halo mass.
func (m *Behroozi10) MeanLogStellarMass(logMh float64) float64 {
	return m.inverse.Eval(logMh)
}

// Assign draws a stellar mass for every galaxy.
func (m *Behroozi10) Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error {
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
