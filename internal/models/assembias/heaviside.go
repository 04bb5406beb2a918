// Package assembias decorates fraction-valued component models with
// step-function assembly bias: halos above and below a conditional
// percentile of a secondary halo property receive perturbed responses,
// with the population mean preserved.
package assembias

import (
	"context"
	"math/rand"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/galprop"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal/defaults"
	"github.com/ShuleiCao/halotools/internal/models/curve"
)

// FractionModel is a component model whose response is a probability,
// exposing the mean fraction it would assign at a given value of the
// primary halo property.
type FractionModel interface {
	galprop.ComponentModel
	MeanFraction(primHaloprop float64) float64
}

// Config configures a Heaviside decoration.
type Config struct {
	// SecHaloprop is the secondary halo property governing the bias.
	// Default is halo_nfw_conc.
	SecHaloprop string

	// SplitFraction is the fraction of halos placed in the lower population
	// at each value of the primary property. Default is 0.5.
	SplitFraction float64

	// Strength is the constant bias strength in [-1, 1], used when no
	// strength control points are given. Zero means no bias.
	Strength float64

	// StrengthAbcissa and StrengthOrdinates optionally give the strength as
	// control points against the primary halo property.
	StrengthAbcissa   []float64
	StrengthOrdinates []float64

	// LogInterp selects strength interpolation in log10 of the primary
	// property. Unset, the control points are interpolated linearly.
	LogInterp bool

	// NumBins is the number of equal-count primary-property bins used for
	// the conditional percentile split. Zero selects 10.
	NumBins int
}

// Heaviside wraps a FractionModel and perturbs its response according to a
// two-population split on the secondary halo property.
type Heaviside struct {
	base        FractionModel
	secHaloprop string
	split       float64
	strength    float64
	strengthFn  *curve.Curve
	numBins     int
}

// Decorate wraps base with step-function assembly bias.
func Decorate(base FractionModel, cfg Config) (*Heaviside, error) {
	if cfg.SecHaloprop == "" {
		cfg.SecHaloprop = defaults.SecHaloprop
	}
	if cfg.SplitFraction == 0 {
		cfg.SplitFraction = 0.5
	}
	if cfg.SplitFraction <= 0 || cfg.SplitFraction >= 1 {
		return nil, core.NewConfigError("split_fraction", "must lie strictly between 0 and 1")
	}
	if cfg.NumBins == 0 {
		cfg.NumBins = 10
	}

	h := &Heaviside{
		base:        base,
		secHaloprop: cfg.SecHaloprop,
		split:       cfg.SplitFraction,
		strength:    cfg.Strength,
		numBins:     cfg.NumBins,
	}
	if len(cfg.StrengthAbcissa) > 0 || len(cfg.StrengthOrdinates) > 0 {
		for _, s := range cfg.StrengthOrdinates {
			if s < -1 || s > 1 {
				return nil, core.NewOrdinateRangeError(s, -1, 1)
			}
		}
		fn, err := curve.New(cfg.StrengthAbcissa, cfg.StrengthOrdinates, cfg.LogInterp)
		if err != nil {
			return nil, err
		}
		h.strengthFn = fn
	} else if cfg.Strength < -1 || cfg.Strength > 1 {
		return nil, core.NewOrdinateRangeError(cfg.Strength, -1, 1)
	}
	return h, nil
}

// GalpropName returns the decorated model's property name.
func (h *Heaviside) GalpropName() string { return h.base.GalpropName() }

// PrimHaloprop returns the decorated model's primary halo property.
func (h *Heaviside) PrimHaloprop() string { return h.base.PrimHaloprop() }

// SecHaloprop returns the secondary halo property governing the bias.
func (h *Heaviside) SecHaloprop() string { return h.secHaloprop }

// StrengthAt returns the bias strength at the given primary property value,
// clamped to [-1, 1].
func (h *Heaviside) StrengthAt(primHaloprop float64) float64 {
	s := h.strength
	if h.strengthFn != nil {
		s = h.strengthFn.Eval(primHaloprop)
	}
	if s < -1 {
		return -1
	}
	if s > 1 {
		return 1
	}
	return s
}

// MeanFractionFor returns the perturbed mean fraction for a halo with the
// given primary property value and population membership. The perturbation
// keeps both populations inside [0, 1] and leaves the combined mean at the
// baseline value.
func (h *Heaviside) MeanFractionFor(primHaloprop float64, upper bool) float64 {
	p := h.base.MeanFraction(primHaloprop)
	s := h.StrengthAt(primHaloprop)
	f := h.split // lower population fraction

	var du float64
	if s >= 0 {
		du = s * minFloat(1-p, f/(1-f)*p)
	} else {
		du = s * minFloat(p, f/(1-f)*(1-p))
	}
	if upper {
		return clamp01(p + du)
	}
	return clamp01(p - (1-f)/f*du)
}

// Assign draws the decorated designation for every galaxy.
func (h *Heaviside) Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error {
	prim, err := catalog.Column(h.base.PrimHaloprop())
	if err != nil {
		return err
	}
	sec, err := catalog.Column(h.secHaloprop)
	if err != nil {
		return err
	}
	upper, err := h.upperPopulation(prim, sec)
	if err != nil {
		return err
	}
	for i := range galaxies {
		if err := ctx.Err(); err != nil {
			return err
		}
		galaxies[i].Quiescent = stream.Float64() < h.MeanFractionFor(prim[i], upper[i])
	}
	return nil
}

// upperPopulation splits halos at the conditional percentile of the
// secondary property, computed within equal-count bins of the primary
// property so the split tracks the primary-property trend.
func (h *Heaviside) upperPopulation(prim, sec []float64) ([]bool, error) {
	n := len(prim)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return prim[order[a]] < prim[order[b]] })

	numBins := h.numBins
	if numBins > n {
		numBins = 1
	}
	upper := make([]bool, n)
	binSize := n / numBins
	for b := 0; b < numBins; b++ {
		lo := b * binSize
		hi := lo + binSize
		if b == numBins-1 {
			hi = n
		}
		members := order[lo:hi]
		secVals := make([]float64, len(members))
		for j, idx := range members {
			secVals[j] = sec[idx]
		}
		threshold, err := stats.Percentile(secVals, h.split*100)
		if err != nil {
			return nil, core.NewConfigError("sec_haloprop", err.Error())
		}
		for _, idx := range members {
			upper[idx] = sec[idx] > threshold
		}
	}
	return upper, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
