package condition

import (
	"math"

	"github.com/wispfire/actionflow/action"
)

// Pulse is Ongoing while the input is held and fires repeatedly, once per
// interval. With TriggerOnStart the first fire lands on the frame the input
// actuates; otherwise it waits a full interval.
type Pulse struct {
	// Interval is the time between fires, in seconds.
	Interval float64
	// TriggerLimit caps the number of fires per activation; zero means no
	// limit. Once reached the condition reads None until release.
	TriggerLimit   uint32
	TriggerOnStart bool
	Actuation      float64
	// Time selects the frame delta the interval ticks with.
	Time action.TimeKind

	elapsed  float64
	count    uint32
	actuated bool
}

// NewPulse returns a Pulse with the given interval that fires on actuation,
// without a trigger limit.
func NewPulse(interval float64) *Pulse {
	return &Pulse{Interval: interval, TriggerOnStart: true, Actuation: DefaultActuation}
}

func (c *Pulse) Evaluate(_ action.View, t action.FrameTime, value action.Value) action.State {
	if !value.IsActuated(c.Actuation) {
		c.elapsed = 0
		c.count = 0
		c.actuated = false
		return action.None
	}

	var fires uint32
	if !c.actuated {
		c.actuated = true
		if c.TriggerOnStart {
			fires++
		}
	}

	c.elapsed += t.DeltaKind(c.Time).Seconds()
	if c.Interval > 0 && c.elapsed >= c.Interval {
		fires += uint32(c.elapsed / c.Interval)
		c.elapsed = math.Mod(c.elapsed, c.Interval)
	}

	if c.TriggerLimit > 0 && c.count >= c.TriggerLimit {
		return action.None
	}
	if fires > 0 {
		c.count += fires
		return action.Fired
	}
	return action.Ongoing
}

func (c *Pulse) Kind() Kind { return Explicit }
