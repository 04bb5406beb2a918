package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuleiCao/halotools/domain/core"
)

func TestCurve_ControlPointsExact(t *testing.T) {
	c, err := New([]float64{12, 15}, []float64{0.25, 0.75}, false)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, c.Eval(12), 1e-12)
	assert.InDelta(t, 0.75, c.Eval(15), 1e-12)
	assert.InDelta(t, 0.5, c.Eval(13.5), 1e-12)
}

func TestCurve_ClampedOutsideRange(t *testing.T) {
	c, err := New([]float64{12, 15}, []float64{0.25, 0.75}, false)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, c.Eval(8), 1e-12)
	assert.InDelta(t, 0.75, c.Eval(20), 1e-12)
}

func TestCurve_LogX(t *testing.T) {
	c, err := New([]float64{12, 15}, []float64{0.25, 0.75}, true)
	require.NoError(t, err)

	// Arguments in linear halo mass, control points in log10.
	assert.InDelta(t, 0.25, c.Eval(1e12), 1e-12)
	assert.InDelta(t, 0.75, c.Eval(1e15), 1e-12)
	assert.InDelta(t, 0.5, c.Eval(math.Pow(10, 13.5)), 1e-12)
}

func TestCurve_ValidationErrors(t *testing.T) {
	cases := []struct {
		name      string
		abcissa   []float64
		ordinates []float64
	}{
		{"too few points", []float64{12}, []float64{0.25}},
		{"length mismatch", []float64{12, 13, 15}, []float64{0.25, 0.75}},
		{"not increasing", []float64{12, 12}, []float64{0.25, 0.75}},
		{"decreasing", []float64{15, 12}, []float64{0.25, 0.75}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.abcissa, tc.ordinates, false)
			require.Error(t, err)
			assert.True(t, core.IsConfigError(err))
		})
	}
}

func TestNewFraction_RangeEnforced(t *testing.T) {
	_, err := NewFraction([]float64{12, 15}, []float64{0.25, 1.75}, false)
	require.Error(t, err)

	_, err = NewFraction([]float64{12, 15}, []float64{-0.1, 0.75}, false)
	require.Error(t, err)

	_, err = NewFraction([]float64{12, 15}, []float64{0, 1}, false)
	assert.NoError(t, err)
}

func TestConstant(t *testing.T) {
	c, err := Constant(12, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, c.Eval(5), 1e-12)
	assert.InDelta(t, 0.2, c.Eval(12), 1e-12)
	assert.InDelta(t, 0.2, c.Eval(30), 1e-12)
}

func TestCurve_AccessorsReturnCopies(t *testing.T) {
	c, err := New([]float64{12, 15}, []float64{0.25, 0.75}, false)
	require.NoError(t, err)

	abcissa := c.Abcissa()
	abcissa[0] = 0
	assert.Equal(t, []float64{12, 15}, c.Abcissa())
}
