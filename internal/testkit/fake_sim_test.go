package testkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSim_Deterministic(t *testing.T) {
	cfg := DefaultFakeSimConfig()
	cfg.HaloCount = 500

	first, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)
	second, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)

	assert.Equal(t, first.Halos, second.Halos)
}

func TestFakeSim_SeedChangesCatalog(t *testing.T) {
	cfg := DefaultFakeSimConfig()
	cfg.HaloCount = 500

	first, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)

	cfg.Seed = 99
	second, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first.Halos, second.Halos)
}

func TestFakeSim_PropertiesInRange(t *testing.T) {
	cfg := DefaultFakeSimConfig()
	cfg.HaloCount = 2000

	cat, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)
	require.Equal(t, 2000, cat.Len())

	for _, h := range cat.Halos {
		logM := math.Log10(h.Mvir)
		assert.GreaterOrEqual(t, logM, cfg.LogMmin)
		assert.LessOrEqual(t, logM, cfg.LogMmax)
		assert.Greater(t, h.Vmax, 0.0)
		assert.Greater(t, h.Conc, 0.0)
		assert.Greater(t, h.Zhalf, 0.0)
		assert.GreaterOrEqual(t, h.X, 0.0)
		assert.Less(t, h.X, cfg.Lbox)
	}
}

func TestFakeSim_MassFunctionIsSteep(t *testing.T) {
	cfg := DefaultFakeSimConfig()
	cfg.HaloCount = 5000

	cat, err := NewFakeSim(cfg).Generate()
	require.NoError(t, err)

	// A steep power-law mass function puts most halos in the low-mass half.
	low := 0
	mid := (cfg.LogMmin + cfg.LogMmax) / 2
	for _, h := range cat.Halos {
		if math.Log10(h.Mvir) < mid {
			low++
		}
	}
	assert.Greater(t, float64(low)/float64(cat.Len()), 0.9)
}

func TestFakeSim_Validation(t *testing.T) {
	cfg := DefaultFakeSimConfig()
	cfg.HaloCount = 0
	_, err := NewFakeSim(cfg).Generate()
	assert.Error(t, err)

	cfg = DefaultFakeSimConfig()
	cfg.LogMmax = cfg.LogMmin
	_, err = NewFakeSim(cfg).Generate()
	assert.Error(t, err)
}
