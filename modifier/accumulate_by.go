package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// AccumulateBy sums the value across frames while another action in the same
// context is Fired. When that action is inactive, the accumulator resets to
// the current frame's value.
//
// A missing referenced action passes the value through unchanged with a
// one-time diagnostic.
type AccumulateBy struct {
	// Action is the name of the action that activates accumulation.
	Action string

	value  mgl64.Vec3
	warned bool
}

// NewAccumulateBy returns an AccumulateBy gated by the named action.
func NewAccumulateBy(actionName string) *AccumulateBy {
	return &AccumulateBy{Action: actionName}
}

func (m *AccumulateBy) Apply(actions action.View, _ action.FrameTime, value action.Value) action.Value {
	record, ok := actions.Lookup(m.Action)
	if !ok {
		warnOnce(&m.warned, "accumulate by: action %q not found in context, passing value through", m.Action)
		return value
	}

	if record.State == action.Fired {
		m.value = m.value.Add(value.AsAxis3D())
	} else {
		m.value = value.AsAxis3D()
	}
	return action.FromVec3(m.value).Convert(value.Dim())
}
