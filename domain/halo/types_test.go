package halo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuleiCao/halotools/domain/core"
)

func testCatalog() *Catalog {
	return &Catalog{
		SimName:  "test_sim",
		Redshift: 0,
		Halos: []Halo{
			{ID: 1, Mvir: 1e12, Vmax: 200, Conc: 10, Zhalf: 1.5},
			{ID: 2, Mvir: 1e14, Vmax: 900, Conc: 6, Zhalf: 0.8},
		},
	}
}

func TestCatalog_Column(t *testing.T) {
	cat := testCatalog()

	mvir, err := cat.Column(PropMvir)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e12, 1e14}, mvir)

	conc, err := cat.Column(PropConc)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 6}, conc)
}

func TestCatalog_ColumnUnknownKey(t *testing.T) {
	cat := testCatalog()
	_, err := cat.Column("halo_spin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownHaloprop))
}

func TestHasProperty(t *testing.T) {
	assert.True(t, HasProperty(PropMvir))
	assert.True(t, HasProperty(PropVmax))
	assert.False(t, HasProperty("halo_spin"))
}
