// Package engine evaluates declarative binding graphs into per-frame action
// transitions: raw input flows through binding pipelines into actions, and
// actions are grouped into prioritized, consuming contexts registered per
// owner.
package engine

import (
	"fmt"
	"sort"

	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/input"
)

// OwnerID identifies who a context instance belongs to, typically an ECS
// entity.
type OwnerID uint64

// Transition reports one action's state change after an evaluation, reset
// or removal. Emitted only when the change raised at least one event.
type Transition struct {
	Context string
	Owner   OwnerID
	Action  string
	State   action.State
	Value   action.Value
	Events  action.Events
	Timing  action.Timing
}

type instance struct {
	owner   OwnerID
	context *Context
}

// Registry holds registered context instances in evaluation order:
// descending priority, creation order among equals.
type Registry struct {
	instances []instance

	// scratch, reused across frames
	seen map[*Context]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[*Context]struct{})}
}

// Add registers a context instance for an owner. Registering the same
// *Context under several owners shares one evaluation between them.
// Panics if the owner already has a context with the same name; that is a
// bookkeeping bug, not bad input.
func (r *Registry) Add(owner OwnerID, ctx *Context) {
	if _, ok := r.Get(owner, ctx.name); ok {
		panic(fmt.Sprintf("context %q already registered for owner %d", ctx.name, owner))
	}

	// First index with lower priority; inserting there keeps creation
	// order among equal priorities.
	i := sort.Search(len(r.instances), func(i int) bool {
		return r.instances[i].context.priority < ctx.priority
	})
	r.instances = append(r.instances, instance{})
	copy(r.instances[i+1:], r.instances[i:])
	r.instances[i] = instance{owner: owner, context: ctx}
}

// Remove unregisters the named context from an owner. If no other owner
// shares the context, its actions reset to None and the resulting
// transitions are returned. Panics if the instance does not exist.
func (r *Registry) Remove(owner OwnerID, name string, t action.FrameTime) []Transition {
	index := -1
	for i, inst := range r.instances {
		if inst.owner == owner && inst.context.name == name {
			index = i
			break
		}
	}
	if index < 0 {
		panic(fmt.Sprintf("context %q is not registered for owner %d", name, owner))
	}

	ctx := r.instances[index].context
	r.instances = append(r.instances[:index], r.instances[index+1:]...)

	for _, inst := range r.instances {
		if inst.context == ctx {
			return nil
		}
	}
	return ctx.reset(t, owner, nil)
}

// Get returns the named context instance of an owner.
func (r *Registry) Get(owner OwnerID, name string) (*Context, bool) {
	for _, inst := range r.instances {
		if inst.owner == owner && inst.context.name == name {
			return inst.context, true
		}
	}
	return nil, false
}

// Evaluate runs one frame over all instances in priority order and returns
// the raised transitions. Call reader.BeginFrame first. A context shared
// between owners is evaluated once, attributed to the first owner in order.
func (r *Registry) Evaluate(reader *input.Reader, t action.FrameTime) []Transition {
	clear(r.seen)
	var out []Transition
	for _, inst := range r.instances {
		if _, done := r.seen[inst.context]; done {
			continue
		}
		r.seen[inst.context] = struct{}{}
		out = inst.context.evaluate(reader, t, inst.owner, out)
	}
	return out
}

// RebuildAll resets every action to None, raising the matching transitions,
// and runs every context's builder again. Bindings come back with their
// ignored latch armed, so inputs held across the rebuild stay silent until
// released once.
func (r *Registry) RebuildAll(t action.FrameTime) []Transition {
	clear(r.seen)
	var out []Transition
	for _, inst := range r.instances {
		if _, done := r.seen[inst.context]; done {
			continue
		}
		r.seen[inst.context] = struct{}{}
		out = inst.context.reset(t, inst.owner, out)
		inst.context.rebuild()
	}
	return out
}

// Rebuild resets and rebuilds a single context instance.
// Panics if the instance does not exist.
func (r *Registry) Rebuild(owner OwnerID, name string, t action.FrameTime) []Transition {
	ctx, ok := r.Get(owner, name)
	if !ok {
		panic(fmt.Sprintf("context %q is not registered for owner %d", name, owner))
	}
	out := ctx.reset(t, owner, nil)
	ctx.rebuild()
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.instances)
}
