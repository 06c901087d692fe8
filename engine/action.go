package engine

import (
	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/condition"
	"github.com/wispfire/actionflow/input"
	"github.com/wispfire/actionflow/modifier"
)

// Action is a named semantic input with persistent state.
//
// Evaluation per frame:
//
//  1. Each binding's raw value runs through the binding's modifiers and
//     conditions into a per-binding tracker.
//  2. Trackers with the most significant state are combined per the
//     action's Accumulation policy; less significant ones are dropped.
//  3. The combined value runs through the action-level modifiers and
//     conditions, which settle the final state.
//  4. If the final state is Fired and ConsumeInput is set, the inputs that
//     contributed are consumed for the rest of the frame.
type Action struct {
	Name string
	// Dim is the output dimensionality; the final value is converted to it.
	Dim action.Dim
	// Accumulation combines values from bindings with equal state.
	Accumulation action.Accumulation
	// ConsumeInput hides fired inputs from lower-priority contexts.
	ConsumeInput bool

	Modifiers  []modifier.Modifier
	Conditions []condition.Condition
	Bindings   []*Binding

	mock   *mock
	state  action.State
	value  action.Value
	events action.Events
	timing action.Timing

	consumeBuffer []input.Binding
}

// NewAction returns an action with the given name and output dimension.
// Actions consume their inputs unless Passive is called.
func NewAction(name string, dim action.Dim) *Action {
	return &Action{
		Name:         name,
		Dim:          dim,
		ConsumeInput: true,
		value:        action.Zero(dim),
	}
}

// To appends bindings. Bindings evaluate independently, so multiple
// bindings mean "any of"; for "all of" see condition.Chord.
func (a *Action) To(bindings ...*Binding) *Action {
	a.Bindings = append(a.Bindings, bindings...)
	return a
}

// WithModifiers appends action-level modifiers, applied to the combined
// value after all bindings are folded.
func (a *Action) WithModifiers(mods ...modifier.Modifier) *Action {
	a.Modifiers = append(a.Modifiers, mods...)
	return a
}

// WithConditions appends action-level conditions.
func (a *Action) WithConditions(conds ...condition.Condition) *Action {
	a.Conditions = append(a.Conditions, conds...)
	return a
}

// WithAccumulation sets the combine policy for same-state bindings.
func (a *Action) WithAccumulation(acc action.Accumulation) *Action {
	a.Accumulation = acc
	return a
}

// Passive stops the action from consuming its inputs, letting
// lower-priority contexts see them even while it fires.
func (a *Action) Passive() *Action {
	a.ConsumeInput = false
	return a
}

// State returns the state settled by the last evaluation.
func (a *Action) State() action.State { return a.state }

// Value returns the value settled by the last evaluation.
func (a *Action) Value() action.Value { return a.value }

// Events returns the transition events raised by the last evaluation.
func (a *Action) Events() action.Events { return a.events }

// Timing returns the elapsed and fired counters.
func (a *Action) Timing() action.Timing { return a.timing }

// Record returns the action's data as seen by sibling conditions.
func (a *Action) Record() action.Record {
	return action.Record{
		State:  a.state,
		Value:  a.value,
		Events: a.events,
		Timing: a.timing,
	}
}

// Mock overrides the action's evaluation with a fixed state and value for
// the given span. Transition events still fire normally.
func (a *Action) Mock(state action.State, value action.Value, span MockSpan) {
	a.mock = &mock{state: state, value: value, span: span}
}

// ClearMock removes an active mock.
func (a *Action) ClearMock() {
	a.mock = nil
}

// maxModKeys is the largest modifier-key count across the action's
// bindings, used to order actions within a context.
func (a *Action) maxModKeys() int {
	most := 0
	for _, b := range a.Bindings {
		if n := b.Input.ModKeyCount(); n > most {
			most = n
		}
	}
	return most
}

// update evaluates the action for one frame and settles its public state.
func (a *Action) update(reader *input.Reader, actions action.View, t action.FrameTime) {
	state, value, mocked := a.fromMock(t)
	if !mocked {
		state, value = a.fromReader(reader, actions, t)
	}
	a.apply(t, state, value)
}

func (a *Action) fromMock(t action.FrameTime) (action.State, action.Value, bool) {
	if a.mock == nil {
		return action.None, action.Value{}, false
	}
	state, value := a.mock.state, a.mock.value
	if a.mock.tick(t.Delta) {
		a.mock = nil
	}
	return state, value, true
}

func (a *Action) fromReader(reader *input.Reader, actions action.View, t action.FrameTime) (action.State, action.Value) {
	tracker := newTracker(action.Zero(a.Dim))
	for _, b := range a.Bindings {
		value := reader.Value(b.Input)
		if b.ignored {
			// Stay silent until the input reads zero once.
			if value.AsBool() {
				continue
			}
			b.ignored = false
		}

		current := newTracker(value)
		current.applyModifiers(actions, t, b.Modifiers)
		current.applyConditions(actions, t, b.Conditions)

		state := current.state()
		if state == action.None {
			// Dropped rather than combined so an action-level condition
			// can still drive the action from inactive bindings.
			continue
		}

		switch {
		case state < tracker.state():
		case state == tracker.state():
			tracker.combine(current, a.Accumulation)
			if a.ConsumeInput {
				a.consumeBuffer = append(a.consumeBuffer, b.Input)
			}
		default:
			tracker.overwrite(current)
			if a.ConsumeInput {
				a.consumeBuffer = append(a.consumeBuffer[:0], b.Input)
			}
		}
	}

	tracker.applyModifiers(actions, t, a.Modifiers)
	tracker.applyConditions(actions, t, a.Conditions)

	state := tracker.state()
	value := tracker.value.Convert(a.Dim)

	if a.ConsumeInput {
		if state == action.Fired {
			for _, in := range a.consumeBuffer {
				reader.Consume(in)
			}
		}
		a.consumeBuffer = a.consumeBuffer[:0]
	}

	return state, value
}

// apply advances timing with the previous state, then settles events,
// state and value. Timing counts completed frames, so the frame an action
// enters a state contributes its delta to the next update.
func (a *Action) apply(t action.FrameTime, state action.State, value action.Value) {
	a.timing.Update(t.DeltaSecs(), a.state)
	a.events = action.Transition(a.state, state)
	a.state = state
	a.value = value
}

// reset drops the action to None with a zero value, raising the matching
// transition events.
func (a *Action) reset(t action.FrameTime) {
	a.apply(t, action.None, action.Zero(a.Dim))
}
