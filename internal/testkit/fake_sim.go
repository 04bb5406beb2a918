// Package testkit generates synthetic halo catalogs with realistic
// property distributions, for demos and tests that should not depend on
// real simulation snapshots.
package testkit

import (
	"context"
	"math"
	"math/rand"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/halo"
)

// FakeSimConfig configures the fake simulation generator.
type FakeSimConfig struct {
	HaloCount int     `json:"halo_count"`
	LogMmin   float64 `json:"log_mmin"` // log10 Msun/h
	LogMmax   float64 `json:"log_mmax"`
	Alpha     float64 `json:"alpha"` // mass function slope dN/dM ~ M^alpha
	Lbox      float64 `json:"lbox"`  // Mpc/h
	Redshift  float64 `json:"redshift"`
	SimName   string  `json:"sim_name"`
	Seed      int64   `json:"seed"`
}

// DefaultFakeSimConfig returns sensible defaults: ten thousand halos with a
// power-law mass function between 10^10.5 and 10^15.5 Msun/h in a 250 Mpc/h
// box at redshift zero.
func DefaultFakeSimConfig() FakeSimConfig {
	return FakeSimConfig{
		HaloCount: 10000,
		LogMmin:   10.5,
		LogMmax:   15.5,
		Alpha:     -1.9,
		Lbox:      250,
		Redshift:  0,
		SimName:   "fake_sim",
		Seed:      43,
	}
}

// FakeSim generates deterministic synthetic halo catalogs.
type FakeSim struct {
	config FakeSimConfig
}

// NewFakeSim creates a generator for the given configuration.
func NewFakeSim(config FakeSimConfig) *FakeSim {
	return &FakeSim{config: config}
}

// Generate produces a halo catalog. The same configuration always yields
// the same catalog.
func (f *FakeSim) Generate() (*halo.Catalog, error) {
	cfg := f.config
	if cfg.HaloCount <= 0 {
		return nil, core.NewConfigError("halo_count", "must be positive")
	}
	if cfg.LogMmax <= cfg.LogMmin {
		return nil, core.NewConfigError("log_mmax", "must exceed log_mmin")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	halos := make([]halo.Halo, cfg.HaloCount)
	for i := range halos {
		mvir := samplePowerLaw(rng, cfg.LogMmin, cfg.LogMmax, cfg.Alpha)
		logM := math.Log10(mvir)

		// Virial scaling with log-normal scatter.
		vmax := 200 * math.Pow(mvir/1e12, 1.0/3.0) * math.Pow(10, 0.05*rng.NormFloat64())

		// Concentration-mass relation, mildly decreasing with mass.
		conc := 9 * math.Pow(mvir/1e13, -0.1) * math.Pow(10, 0.1*rng.NormFloat64())

		// More massive halos assemble later on average.
		zhalf := math.Max(0.05, 2.5-0.3*(logM-12)+0.5*rng.NormFloat64())

		halos[i] = halo.Halo{
			ID:    int64(i + 1),
			Mvir:  mvir,
			Vmax:  vmax,
			Conc:  conc,
			Zhalf: zhalf,
			X:     rng.Float64() * cfg.Lbox,
			Y:     rng.Float64() * cfg.Lbox,
			Z:     rng.Float64() * cfg.Lbox,
		}
	}

	return &halo.Catalog{
		SnapshotID:   core.NewSnapshotID(),
		SimName:      cfg.SimName,
		Redshift:     cfg.Redshift,
		Lbox:         cfg.Lbox,
		ParticleMass: math.Pow(10, cfg.LogMmin) / 100,
		Seed:         cfg.Seed,
		Halos:        halos,
	}, nil
}

// Load implements ports.CatalogSource.
func (f *FakeSim) Load(ctx context.Context) (*halo.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Generate()
}

// samplePowerLaw draws a mass from dN/dM ~ M^alpha on [10^logMin, 10^logMax]
// by inverse transform sampling.
func samplePowerLaw(rng *rand.Rand, logMin, logMax, alpha float64) float64 {
	lo := math.Pow(10, logMin)
	hi := math.Pow(10, logMax)
	u := rng.Float64()
	if alpha == -1 {
		return lo * math.Pow(hi/lo, u)
	}
	a1 := alpha + 1
	return math.Pow(u*(math.Pow(hi, a1)-math.Pow(lo, a1))+math.Pow(lo, a1), 1/a1)
}
