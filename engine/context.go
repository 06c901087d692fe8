package engine

import (
	"fmt"
	"sort"

	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/input"
)

// Builder populates a context with its actions and bindings. The registry
// runs it on registration and again on every rebuild, so binding state such
// as the ignored latch starts fresh each time.
type Builder func(*Context)

// Context is a named group of actions evaluated together, such as "on foot"
// or "in menu". Contexts with higher priority evaluate first and may consume
// inputs before lower-priority contexts see them.
//
// The same *Context can be registered under several owners to share one
// evaluation between them.
type Context struct {
	name     string
	priority int
	build    Builder
	gamepad  input.GamepadDevice

	actions []*Action
	byName  map[string]*Action
}

// NewContext returns a context populated by the given builder.
func NewContext(name string, priority int, build Builder) *Context {
	c := &Context{
		name:     name,
		priority: priority,
		build:    build,
	}
	c.rebuild()
	return c
}

// Name returns the context name.
func (c *Context) Name() string { return c.name }

// Priority returns the evaluation priority; higher evaluates first.
func (c *Context) Priority() int { return c.priority }

// SetGamepad restricts the context's gamepad bindings to the given device.
// The filter persists across rebuilds.
func (c *Context) SetGamepad(device input.GamepadDevice) {
	c.gamepad = device
}

// AddAction registers an action. Called from the builder.
// Panics on a duplicate name: sibling lookups key on it.
func (c *Context) AddAction(a *Action) *Action {
	if _, ok := c.byName[a.Name]; ok {
		panic(fmt.Sprintf("action %q already exists in context %q", a.Name, c.name))
	}
	c.actions = append(c.actions, a)
	c.byName[a.Name] = a
	return a
}

// Action returns the named action.
func (c *Context) Action(name string) (*Action, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Actions returns the actions in evaluation order.
func (c *Context) Actions() []*Action {
	return c.actions
}

// Lookup implements action.View for conditions and modifiers that
// reference sibling actions.
func (c *Context) Lookup(name string) (action.Record, bool) {
	a, ok := c.byName[name]
	if !ok {
		return action.Record{}, false
	}
	return a.Record(), true
}

// rebuild drops every action and runs the builder again.
func (c *Context) rebuild() {
	c.actions = nil
	c.byName = make(map[string]*Action)
	if c.build != nil {
		c.build(c)
	}
	c.sortActions()
}

// sortActions orders actions by descending modifier-key count, so that
// Ctrl+C evaluates (and consumes) before a bare C within the context. The
// sort is stable to keep declaration order among ties.
func (c *Context) sortActions() {
	sort.SliceStable(c.actions, func(i, j int) bool {
		return c.actions[i].maxModKeys() > c.actions[j].maxModKeys()
	})
}

// evaluate runs one frame for every action, appending a Transition for each
// action that raised events.
func (c *Context) evaluate(reader *input.Reader, t action.FrameTime, owner OwnerID, out []Transition) []Transition {
	reader.SetGamepad(c.gamepad)
	for _, a := range c.actions {
		a.update(reader, c, t)
		out = appendTransition(out, c, owner, a)
	}
	return out
}

// reset drops every action to None, appending the resulting Canceled and
// Completed transitions.
func (c *Context) reset(t action.FrameTime, owner OwnerID, out []Transition) []Transition {
	for _, a := range c.actions {
		a.reset(t)
		out = appendTransition(out, c, owner, a)
	}
	return out
}

func appendTransition(out []Transition, c *Context, owner OwnerID, a *Action) []Transition {
	if a.events == 0 {
		return out
	}
	return append(out, Transition{
		Context: c.name,
		Owner:   owner,
		Action:  a.Name,
		State:   a.state,
		Value:   a.value,
		Events:  a.events,
		Timing:  a.timing,
	})
}
