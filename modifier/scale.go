package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// Scale multiplies the value independently along each axis.
type Scale struct {
	// Factor applied to the input value per axis.
	Factor mgl64.Vec3
}

// NewScale returns a Scale with every axis set to factor.
func NewScale(factor float64) *Scale {
	return &Scale{Factor: mgl64.Vec3{factor, factor, factor}}
}

// NewScaleVec returns a Scale with per-axis factors.
func NewScaleVec(factor mgl64.Vec3) *Scale {
	return &Scale{Factor: factor}
}

func (m *Scale) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	v := value.AsAxis3D()
	scaled := mgl64.Vec3{v[0] * m.Factor[0], v[1] * m.Factor[1], v[2] * m.Factor[2]}
	return action.FromVec3(scaled).Convert(value.Dim())
}
