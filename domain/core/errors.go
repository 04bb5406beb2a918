package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrRunNotFound     = fmt.Errorf("%w: population run", ErrNotFound)
	ErrCatalogNotFound = fmt.Errorf("%w: halo catalog", ErrNotFound)

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid model configuration")
	ErrBlueprintCollision = errors.New("duplicate galaxy property in blueprint")
	ErrEmptyBlueprint     = errors.New("blueprint contains no component models")
	ErrControlPoints      = errors.New("invalid interpolation control points")
	ErrOrdinateRange      = errors.New("ordinate outside allowed range")
	ErrUnknownHaloprop    = errors.New("unknown halo property key")

	// Population errors
	ErrEmptyCatalog     = errors.New("halo catalog contains no halos")
	ErrNonDeterministic = errors.New("non-deterministic result")
	ErrSeedMismatch     = errors.New("seed mismatch")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, reason)
}

func NewCollisionError(galpropName string) error {
	return fmt.Errorf("%w: %q already assigned to another component model", ErrBlueprintCollision, galpropName)
}

func NewControlPointError(reason string) error {
	return fmt.Errorf("%w: %s", ErrControlPoints, reason)
}

func NewOrdinateRangeError(value, lower, upper float64) error {
	return fmt.Errorf("%w: %g not in [%g, %g]", ErrOrdinateRange, value, lower, upper)
}

func NewUnknownHalopropError(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownHaloprop, key)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrBlueprintCollision) ||
		errors.Is(err, ErrControlPoints) ||
		errors.Is(err, ErrOrdinateRange) ||
		errors.Is(err, ErrUnknownHaloprop)
}
