package condition

import "github.com/wispfire/actionflow/action"

// Press fires exactly once on the transition into actuation and never
// retriggers while the input stays held.
type Press struct {
	Actuation float64

	actuated bool
}

// NewPress returns a Press with the default actuation threshold.
func NewPress() *Press {
	return &Press{Actuation: DefaultActuation}
}

func (c *Press) Evaluate(_ action.View, _ action.FrameTime, value action.Value) action.State {
	wasActuated := c.actuated
	c.actuated = value.IsActuated(c.Actuation)
	if c.actuated && !wasActuated {
		return action.Fired
	}
	return action.None
}

func (c *Press) Kind() Kind { return Explicit }
