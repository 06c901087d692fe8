package condition

import "github.com/wispfire/actionflow/action"

// Down fires for as long as the input is actuated. Stateless.
type Down struct {
	// Actuation is the magnitude threshold for the input to count as held.
	Actuation float64
}

// NewDown returns a Down with the default actuation threshold.
func NewDown() *Down {
	return &Down{Actuation: DefaultActuation}
}

func (c *Down) Evaluate(_ action.View, _ action.FrameTime, value action.Value) action.State {
	if value.IsActuated(c.Actuation) {
		return action.Fired
	}
	return action.None
}

func (c *Down) Kind() Kind { return Explicit }
