package galprop

import (
	"github.com/ShuleiCao/halotools/domain/core"
)

// Blueprint maps galaxy property names to the component models responsible
// for them. Property names must be unique: adding a second model for a name
// already present fails fast instead of silently overwriting.
//
// Iteration order is insertion order, so population passes are reproducible.
type Blueprint struct {
	order  []string
	models map[string]ComponentModel
}

// NewBlueprint creates an empty blueprint.
func NewBlueprint() *Blueprint {
	return &Blueprint{models: make(map[string]ComponentModel)}
}

// Add registers a component model under its declared property name.
func (b *Blueprint) Add(m ComponentModel) error {
	name := m.GalpropName()
	if name == "" {
		return core.NewConfigError("galprop_name", "component model declares an empty property name")
	}
	if _, exists := b.models[name]; exists {
		return core.NewCollisionError(name)
	}
	b.models[name] = m
	b.order = append(b.order, name)
	return nil
}

// Get returns the model registered under name.
func (b *Blueprint) Get(name string) (ComponentModel, bool) {
	m, ok := b.models[name]
	return m, ok
}

// Names returns the registered property names in insertion order.
func (b *Blueprint) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of registered component models.
func (b *Blueprint) Len() int {
	return len(b.order)
}

// Clone returns a blueprint with its own bookkeeping. The component models
// themselves are shared; they are immutable after construction.
func (b *Blueprint) Clone() *Blueprint {
	c := NewBlueprint()
	c.order = make([]string, len(b.order))
	copy(c.order, b.order)
	for name, m := range b.models {
		c.models[name] = m
	}
	return c
}
