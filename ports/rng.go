package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// mock population. Every component model draws from its own named stream
// so that adding or reordering models does not disturb the draws of the
// others.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation. The same (name, seed) pair always yields the same
	// stream of draws.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// ValidateSeed ensures the seed produces expected deterministic results
	ValidateSeed(ctx context.Context, name string, seed int64, expected []float64) error
}
