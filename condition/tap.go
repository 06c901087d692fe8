package condition

import "github.com/wispfire/actionflow/action"

// Tap is Ongoing while the input is held and fires on release, but only if
// the release happens before ReleaseTime elapses. Holding past the window
// latches the condition to None until the input is released.
type Tap struct {
	// ReleaseTime is the window, in seconds, within which the input must
	// be released for the tap to fire.
	ReleaseTime float64
	Actuation   float64
	// Time selects the frame delta the window ticks with.
	Time action.TimeKind

	held     timer
	actuated bool
}

// NewTap returns a Tap with the given release window and the default
// actuation threshold.
func NewTap(releaseTime float64) *Tap {
	return &Tap{ReleaseTime: releaseTime, Actuation: DefaultActuation}
}

func (c *Tap) Evaluate(_ action.View, t action.FrameTime, value action.Value) action.State {
	c.held.timeKind = c.Time
	c.held.duration = c.ReleaseTime

	wasActuated := c.actuated
	c.actuated = value.IsActuated(c.Actuation)
	if c.actuated {
		c.held.tick(t)
	}

	if wasActuated && !c.actuated {
		fired := !c.held.finished
		c.held.reset()
		if fired {
			return action.Fired
		}
		return action.None
	}

	if c.actuated {
		if c.held.finished {
			return action.None
		}
		return action.Ongoing
	}

	c.held.reset()
	return action.None
}

func (c *Tap) Kind() Kind { return Explicit }
