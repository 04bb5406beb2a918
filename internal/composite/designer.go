package composite

// HODModelDesigner is the extension point for composing occupation-model
// components (central/satellite occupation, phase-space profiles) into a
// blueprint for a dedicated HOD factory. It currently only collects its
// inputs: any mixture of named and unnamed components is accepted and no
// validation is performed.
type HODModelDesigner struct {
	components []any
	named      map[string]any
}

// NewHODModelDesigner creates a designer holding the given components.
// Arbitrary input, including none at all, is accepted.
func NewHODModelDesigner(components ...any) *HODModelDesigner {
	return &HODModelDesigner{
		components: components,
		named:      make(map[string]any),
	}
}

// Register stores a component under a name. Re-registering a name replaces
// the previous component.
func (d *HODModelDesigner) Register(name string, component any) {
	d.named[name] = component
}

// Components returns the unnamed components in the order received.
func (d *HODModelDesigner) Components() []any {
	out := make([]any, len(d.components))
	copy(out, d.components)
	return out
}

// Named returns the component registered under name.
func (d *HODModelDesigner) Named(name string) (any, bool) {
	c, ok := d.named[name]
	return c, ok
}
