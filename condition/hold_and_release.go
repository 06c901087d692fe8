package condition

import "github.com/wispfire/actionflow/action"

// HoldAndRelease is Ongoing while the input is held and fires on release,
// but only if at least HoldTime seconds of held duration accumulated first.
// Releasing early yields None.
type HoldAndRelease struct {
	HoldTime  float64
	Actuation float64
	Time      action.TimeKind

	held     timer
	actuated bool
}

// NewHoldAndRelease returns a HoldAndRelease with the given hold time and
// the default actuation threshold.
func NewHoldAndRelease(holdTime float64) *HoldAndRelease {
	return &HoldAndRelease{HoldTime: holdTime, Actuation: DefaultActuation}
}

func (c *HoldAndRelease) Evaluate(_ action.View, t action.FrameTime, value action.Value) action.State {
	c.held.timeKind = c.Time
	c.held.duration = c.HoldTime

	wasActuated := c.actuated
	c.actuated = value.IsActuated(c.Actuation)
	if c.actuated {
		c.held.tick(t)
		return action.Ongoing
	}

	heldLongEnough := c.held.finished
	c.held.reset()
	if wasActuated && heldLongEnough {
		return action.Fired
	}
	return action.None
}

func (c *HoldAndRelease) Kind() Kind { return Explicit }
