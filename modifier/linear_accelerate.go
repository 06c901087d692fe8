package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// LinearAccelerate ramps the output toward the target value by a fixed step
// each frame, giving keyboard input an analog-feeling attack and decay. The
// step moves along the straight line to the target, so a direction flip
// ramps down through zero instead of jumping.
//
// StepRate must lie in [0, 1]; anything else makes the modifier a warned
// no-op rather than failing the frame.
type LinearAccelerate struct {
	StepRate float64

	current mgl64.Vec3
	warned  bool
}

// NewLinearAccelerate returns a LinearAccelerate with the given per-frame step.
func NewLinearAccelerate(stepRate float64) *LinearAccelerate {
	return &LinearAccelerate{StepRate: stepRate}
}

func (m *LinearAccelerate) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	if m.StepRate < 0 || m.StepRate > 1 {
		warnOnce(&m.warned, "linear accelerate: step rate %g outside [0, 1], passing value through", m.StepRate)
		return value
	}

	value = promote(value)
	target := value.AsAxis3D()

	diff := target.Sub(m.current)
	if diff.Dot(diff) <= m.StepRate*m.StepRate {
		m.current = target
		return value
	}

	m.current = m.current.Add(diff.Mul(m.StepRate / diff.Len()))
	return action.FromVec3(m.current).Convert(value.Dim())
}
