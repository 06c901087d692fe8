package condition

import "github.com/wispfire/actionflow/action"

// BlockBy vetoes the action while all of the named sibling actions are
// Fired, forcing its state to None for those frames. Otherwise the blocker
// passes through as Fired.
//
// A missing referenced action makes the blocker inert (always Fired) with a
// one-time diagnostic.
type BlockBy struct {
	// Actions are the names of the sibling actions that block this one.
	Actions []string

	warned bool
}

// NewBlockBy returns a BlockBy vetoed by the named sibling actions.
func NewBlockBy(actions ...string) *BlockBy {
	return &BlockBy{Actions: actions}
}

func (c *BlockBy) Evaluate(actions action.View, _ action.FrameTime, _ action.Value) action.State {
	for _, name := range c.Actions {
		record, ok := actions.Lookup(name)
		if !ok {
			warnOnce(&c.warned, "block by: action %q not found in context, ignoring condition", name)
			return action.Fired
		}
		if record.State != action.Fired {
			return action.Fired
		}
	}
	return action.None
}

func (c *BlockBy) Kind() Kind { return Blocker }
