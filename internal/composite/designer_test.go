package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHODModelDesigner_AcceptsAnything(t *testing.T) {
	assert.NotNil(t, NewHODModelDesigner())
	assert.NotNil(t, NewHODModelDesigner(nil))
	assert.NotNil(t, NewHODModelDesigner(1, "centrals", struct{ N int }{3}))
}

func TestHODModelDesigner_StoresComponents(t *testing.T) {
	d := NewHODModelDesigner("a", "b")
	assert.Equal(t, []any{"a", "b"}, d.Components())

	d.Register("satellites", 7)
	got, ok := d.Named("satellites")
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = d.Named("centrals")
	assert.False(t, ok)
}
