package engine

import (
	"github.com/wispfire/actionflow/condition"
	"github.com/wispfire/actionflow/input"
	"github.com/wispfire/actionflow/modifier"
)

// Binding attaches one physical input to an action, with its own modifier
// and condition pipeline.
//
// A fresh binding starts ignored: it contributes nothing until its raw value
// reads zero once. This keeps a key that is still held down from instantly
// re-firing the action it was bound to before a rebuild.
type Binding struct {
	Input      input.Binding
	Modifiers  []modifier.Modifier
	Conditions []condition.Condition

	ignored bool
}

// NewBinding returns a binding for the given physical input.
func NewBinding(in input.Binding) *Binding {
	return &Binding{Input: in, ignored: true}
}

// WithModifiers appends input-level modifiers, applied in order before the
// binding's conditions.
func (b *Binding) WithModifiers(mods ...modifier.Modifier) *Binding {
	b.Modifiers = append(b.Modifiers, mods...)
	return b
}

// WithConditions appends input-level conditions.
func (b *Binding) WithConditions(conds ...condition.Condition) *Binding {
	b.Conditions = append(b.Conditions, conds...)
	return b
}
