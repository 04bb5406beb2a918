package sfr

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuleiCao/halotools/domain/halo"
)

func defaultModel(t *testing.T) *BinaryInterpolModel {
	t.Helper()
	m, err := New(Config{
		Abcissa:   []float64{12, 15},
		Ordinates: []float64{0.25, 0.75},
		LogParam:  true,
	})
	require.NoError(t, err)
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := defaultModel(t)
	assert.Equal(t, "quiescent", m.GalpropName())
	assert.Equal(t, halo.PropMvir, m.PrimHaloprop())
	assert.True(t, m.LogParam())
}

func TestMeanFraction_LogInterpolation(t *testing.T) {
	m := defaultModel(t)

	assert.InDelta(t, 0.25, m.MeanFraction(1e12), 1e-12)
	assert.InDelta(t, 0.75, m.MeanFraction(1e15), 1e-12)
	assert.InDelta(t, 0.5, m.MeanFraction(math.Pow(10, 13.5)), 1e-12)

	// Clamped at the endpoints.
	assert.InDelta(t, 0.25, m.MeanFraction(1e10), 1e-12)
	assert.InDelta(t, 0.75, m.MeanFraction(1e16), 1e-12)
}

func TestMeanFraction_LinearInterpolation(t *testing.T) {
	m, err := New(Config{
		Abcissa:   []float64{1e12, 1e15},
		Ordinates: []float64{0.0, 1.0},
		LogParam:  false,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, m.MeanFraction(1e12), 1e-12)
	assert.InDelta(t, 1.0, m.MeanFraction(1e15), 1e-12)

	// Midpoint in linear, not log, space.
	mid := (1e12 + 1e15) / 2
	assert.InDelta(t, 0.5, m.MeanFraction(mid), 1e-9)
}

func TestNew_ValidationErrors(t *testing.T) {
	_, err := New(Config{Abcissa: []float64{12, 15}, Ordinates: []float64{0.25}})
	assert.Error(t, err)

	_, err = New(Config{Abcissa: []float64{12, 15}, Ordinates: []float64{0.25, 1.25}})
	assert.Error(t, err)

	_, err = New(Config{Abcissa: []float64{15, 12}, Ordinates: []float64{0.25, 0.75}})
	assert.Error(t, err)
}

func TestAssign_DeterministicPerSeed(t *testing.T) {
	m := defaultModel(t)

	halos := make([]halo.Halo, 500)
	for i := range halos {
		halos[i] = halo.Halo{ID: int64(i + 1), Mvir: math.Pow(10, 11+float64(i%5))}
	}
	cat := &halo.Catalog{SimName: "test_sim", Halos: halos}

	first := make([]halo.Galaxy, len(halos))
	second := make([]halo.Galaxy, len(halos))
	require.NoError(t, m.Assign(context.Background(), rand.New(rand.NewSource(5)), cat, first))
	require.NoError(t, m.Assign(context.Background(), rand.New(rand.NewSource(5)), cat, second))
	assert.Equal(t, first, second)
}

func TestAssign_FractionTracksControlPoints(t *testing.T) {
	m := defaultModel(t)

	// All halos at the cluster control point: expect ~75% quiescent.
	halos := make([]halo.Halo, 5000)
	for i := range halos {
		halos[i] = halo.Halo{ID: int64(i + 1), Mvir: 1e15}
	}
	cat := &halo.Catalog{SimName: "test_sim", Halos: halos}

	galaxies := make([]halo.Galaxy, len(halos))
	require.NoError(t, m.Assign(context.Background(), rand.New(rand.NewSource(11)), cat, galaxies))

	quiescent := 0
	for _, g := range galaxies {
		if g.Quiescent {
			quiescent++
		}
	}
	assert.InDelta(t, 0.75, float64(quiescent)/float64(len(galaxies)), 0.02)
}
