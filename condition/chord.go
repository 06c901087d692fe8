package condition

import "github.com/wispfire/actionflow/action"

// Chord inherits the maximum state among the named sibling actions. As an
// implicit condition it gates firing: combined with other implicits, the
// action only fires when every chorded action is Fired in the same frame.
//
// A missing referenced action makes the chord inert (always Fired) with a
// one-time diagnostic, so a typo does not silently kill the action.
type Chord struct {
	// Actions are the names of the sibling actions that must fire.
	Actions []string

	warned bool
}

// NewChord returns a Chord over the named sibling actions.
func NewChord(actions ...string) *Chord {
	return &Chord{Actions: actions}
}

func (c *Chord) Evaluate(actions action.View, _ action.FrameTime, _ action.Value) action.State {
	state := action.None
	for _, name := range c.Actions {
		record, ok := actions.Lookup(name)
		if !ok {
			warnOnce(&c.warned, "chord: action %q not found in context, ignoring condition", name)
			return action.Fired
		}
		if record.State > state {
			state = record.State
		}
	}
	return state
}

func (c *Chord) Kind() Kind { return Implicit }
