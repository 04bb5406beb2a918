package smhm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/internal/models/curve"
)

// LogNormalScatter models stellar mass scatter in dex as a function of
// log10 halo mass, interpolated between control points. A single control
// point yields a constant scatter level.
type LogNormalScatter struct {
	level *curve.Curve
}

// NewLogNormalScatter builds a scatter model from control points.
// Scatter levels must be non-negative.
func NewLogNormalScatter(abcissa, ordinates []float64) (*LogNormalScatter, error) {
	if len(abcissa) == 0 {
		return nil, core.NewControlPointError("scatter model needs at least one control point")
	}
	if len(abcissa) != len(ordinates) {
		return nil, core.NewControlPointError("scatter abcissa and ordinates differ in length")
	}
	for _, level := range ordinates {
		if level < 0 {
			return nil, core.NewConfigError("scatter_ordinates", "scatter level must be non-negative")
		}
	}

	var c *curve.Curve
	var err error
	if len(abcissa) == 1 {
		c, err = curve.Constant(abcissa[0], ordinates[0])
	} else {
		c, err = curve.New(abcissa, ordinates, false)
	}
	if err != nil {
		return nil, err
	}
	return &LogNormalScatter{level: c}, nil
}

// Level returns the scatter level in dex at the given log10 halo mass.
func (s *LogNormalScatter) Level(logMh float64) float64 {
	return s.level.Eval(logMh)
}

// Draw samples a scatter offset in dex for a halo of the given log10 mass
// from the provided deterministic stream.
func (s *LogNormalScatter) Draw(stream *rand.Rand, logMh float64) float64 {
	level := s.Level(logMh)
	if level <= 0 {
		return 0
	}
	u := stream.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64
	}
	return distuv.Normal{Mu: 0, Sigma: level}.Quantile(u)
}
