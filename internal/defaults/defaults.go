// Package defaults centralizes the default choices shared by the empirical
// model components: which halo property drives galaxy assignment, the default
// snapshot redshift, and the canonical control points for scatter and
// quiescent-fraction interpolation.
package defaults

import (
	"github.com/ShuleiCao/halotools/domain/halo"
)

const (
	// PrimHaloprop is the halo property driving galaxy assignment when the
	// caller does not choose one.
	PrimHaloprop = halo.PropMvir

	// SecHaloprop is the secondary halo property used by assembly-bias
	// decorations.
	SecHaloprop = halo.PropConc

	// Redshift is the default snapshot redshift.
	Redshift = 0.0

	// ScatterAnchor is the log10 halo mass at which a constant scatter
	// level is anchored.
	ScatterAnchor = 12.0

	// ScatterLevel is the default log-normal stellar mass scatter, in dex.
	ScatterLevel = 0.2

	// StellarMassGalprop is the property name declared by SMHM models.
	StellarMassGalprop = "stellar_mass"

	// QuiescentGalprop is the property name declared by binary SFR models.
	QuiescentGalprop = "quiescent"
)

// SFRAbcissa returns the default quiescent-fraction control point locations,
// in log10 halo mass.
func SFRAbcissa() []float64 {
	return []float64{12, 15}
}

// SFROrdinates returns the default quiescent fraction at each control point:
// 25% for Milky Way halos, 75% for cluster halos.
func SFROrdinates() []float64 {
	return []float64{0.25, 0.75}
}
