package condition

import "github.com/wispfire/actionflow/action"

// Hold is Ongoing while the input is held and fires once HoldTime seconds of
// continuous hold accumulate. By default it keeps firing for as long as the
// input stays held; with OneShot it fires on a single frame and then returns
// None until the input is released and held again.
type Hold struct {
	// HoldTime is the continuous hold required before firing, in seconds.
	HoldTime  float64
	OneShot   bool
	Actuation float64
	Time      action.TimeKind

	held timer
}

// NewHold returns a Hold with the given hold time and the default actuation
// threshold.
func NewHold(holdTime float64) *Hold {
	return &Hold{HoldTime: holdTime, Actuation: DefaultActuation}
}

func (c *Hold) Evaluate(_ action.View, t action.FrameTime, value action.Value) action.State {
	c.held.timeKind = c.Time
	c.held.duration = c.HoldTime

	if !value.IsActuated(c.Actuation) {
		c.held.reset()
		return action.None
	}

	c.held.tick(t)
	if c.held.finished {
		if c.OneShot && !c.held.justFinished {
			return action.None
		}
		return action.Fired
	}
	return action.Ongoing
}

func (c *Hold) Kind() Kind { return Explicit }
