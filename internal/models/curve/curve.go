// Package curve provides validated piecewise-linear control-point curves,
// the interpolation primitive shared by the empirical model components.
package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/ShuleiCao/halotools/domain/core"
)

// Curve evaluates a piecewise-linear interpolation through a set of control
// points. Outside the abcissa range the curve is clamped to the endpoint
// ordinates. When logX is set, Eval takes its argument in linear units and
// interpolates against its base-10 logarithm.
type Curve struct {
	pl        interp.PiecewiseLinear
	abcissa   []float64
	ordinates []float64
	logX      bool
}

// New builds a curve from control points. The abcissa must be strictly
// increasing with at least two entries, and ordinates must match in length.
func New(abcissa, ordinates []float64, logX bool) (*Curve, error) {
	if err := validate(abcissa, ordinates); err != nil {
		return nil, err
	}
	c := &Curve{
		abcissa:   append([]float64(nil), abcissa...),
		ordinates: append([]float64(nil), ordinates...),
		logX:      logX,
	}
	if err := c.pl.Fit(c.abcissa, c.ordinates); err != nil {
		return nil, core.NewControlPointError(err.Error())
	}
	return c, nil
}

// NewFraction builds a curve whose ordinates are constrained to [0, 1],
// suitable for quiescent fractions and split fractions.
func NewFraction(abcissa, ordinates []float64, logX bool) (*Curve, error) {
	for _, y := range ordinates {
		if y < 0 || y > 1 {
			return nil, core.NewOrdinateRangeError(y, 0, 1)
		}
	}
	return New(abcissa, ordinates, logX)
}

// Constant builds a single-level curve that evaluates to level everywhere.
func Constant(anchor, level float64) (*Curve, error) {
	// Two coincident-level points keep the piecewise fit well defined.
	return New([]float64{anchor, anchor + 1}, []float64{level, level}, false)
}

// Eval returns the interpolated ordinate at x, clamped to the endpoint
// values outside the control-point range.
func (c *Curve) Eval(x float64) float64 {
	if c.logX {
		x = math.Log10(x)
	}
	return c.pl.Predict(x)
}

// Abcissa returns a copy of the control point locations.
func (c *Curve) Abcissa() []float64 {
	return append([]float64(nil), c.abcissa...)
}

// Ordinates returns a copy of the control point values.
func (c *Curve) Ordinates() []float64 {
	return append([]float64(nil), c.ordinates...)
}

// LogX reports whether the curve interpolates in log10 of its argument.
func (c *Curve) LogX() bool {
	return c.logX
}

func validate(abcissa, ordinates []float64) error {
	if len(abcissa) < 2 {
		return core.NewControlPointError("need at least two control points")
	}
	if len(abcissa) != len(ordinates) {
		return core.NewControlPointError(fmt.Sprintf(
			"abcissa length %d does not match ordinates length %d", len(abcissa), len(ordinates)))
	}
	for i := 1; i < len(abcissa); i++ {
		if abcissa[i] <= abcissa[i-1] {
			return core.NewControlPointError(fmt.Sprintf(
				"abcissa must be strictly increasing, got %g after %g", abcissa[i], abcissa[i-1]))
		}
	}
	return nil
}
