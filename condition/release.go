package condition

import "github.com/wispfire/actionflow/action"

// Release is Ongoing while the input is held and fires exactly once on the
// transition to released.
type Release struct {
	Actuation float64

	actuated bool
}

// NewRelease returns a Release with the default actuation threshold.
func NewRelease() *Release {
	return &Release{Actuation: DefaultActuation}
}

func (c *Release) Evaluate(_ action.View, _ action.FrameTime, value action.Value) action.State {
	wasActuated := c.actuated
	c.actuated = value.IsActuated(c.Actuation)
	switch {
	case c.actuated:
		return action.Ongoing
	case wasActuated:
		return action.Fired
	default:
		return action.None
	}
}

func (c *Release) Kind() Kind { return Explicit }
