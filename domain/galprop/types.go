package galprop

import (
	"context"
	"math/rand"

	"github.com/ShuleiCao/halotools/domain/halo"
)

// ComponentModel assigns a single galaxy property to every galaxy in a mock.
// Each implementation declares the property it is responsible for and the
// primary halo property that drives the assignment.
type ComponentModel interface {
	// GalpropName returns the galaxy property this model assigns, e.g. "stellar_mass".
	GalpropName() string

	// PrimHaloprop returns the halo property key driving the assignment.
	PrimHaloprop() string

	// Assign writes the model's property into every galaxy. The galaxies slice
	// is parallel to catalog.Halos; stream is a deterministic, model-private
	// random source.
	Assign(ctx context.Context, stream *rand.Rand, catalog *halo.Catalog, galaxies []halo.Galaxy) error
}

// SelectionFunc decides whether a populated galaxy is kept in the mock.
type SelectionFunc func(g halo.Galaxy) bool

// StellarMassThreshold returns a selection keeping galaxies whose
// stellar mass exceeds threshold.
func StellarMassThreshold(threshold float64) SelectionFunc {
	return func(g halo.Galaxy) bool {
		return g.StellarMass > threshold
	}
}
