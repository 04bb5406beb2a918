package galprop

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/halo"
)

type stubModel struct {
	name string
}

func (m *stubModel) GalpropName() string  { return m.name }
func (m *stubModel) PrimHaloprop() string { return halo.PropMvir }
func (m *stubModel) Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error {
	return nil
}

func TestBlueprint_AddAndOrder(t *testing.T) {
	bp := NewBlueprint()
	require.NoError(t, bp.Add(&stubModel{name: "stellar_mass"}))
	require.NoError(t, bp.Add(&stubModel{name: "quiescent"}))

	assert.Equal(t, 2, bp.Len())
	assert.Equal(t, []string{"stellar_mass", "quiescent"}, bp.Names())

	m, ok := bp.Get("stellar_mass")
	assert.True(t, ok)
	assert.Equal(t, "stellar_mass", m.GalpropName())
}

func TestBlueprint_CollisionFailsFast(t *testing.T) {
	bp := NewBlueprint()
	require.NoError(t, bp.Add(&stubModel{name: "quiescent"}))

	err := bp.Add(&stubModel{name: "quiescent"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrBlueprintCollision))
	assert.Equal(t, 1, bp.Len())
}

func TestBlueprint_EmptyNameRejected(t *testing.T) {
	bp := NewBlueprint()
	err := bp.Add(&stubModel{name: ""})
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
}

func TestBlueprint_CloneIsIndependent(t *testing.T) {
	bp := NewBlueprint()
	require.NoError(t, bp.Add(&stubModel{name: "stellar_mass"}))

	clone := bp.Clone()
	require.NoError(t, clone.Add(&stubModel{name: "quiescent"}))

	assert.Equal(t, 1, bp.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestStellarMassThreshold(t *testing.T) {
	keep := StellarMassThreshold(1e10)
	assert.True(t, keep(halo.Galaxy{StellarMass: 2e10}))
	assert.False(t, keep(halo.Galaxy{StellarMass: 5e9}))
	assert.False(t, keep(halo.Galaxy{StellarMass: 1e10}), "threshold is exclusive")
}
