package modifier

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// Clamp restricts the value to an interval independently along each axis.
type Clamp struct {
	// Min is the minimum value per axis.
	Min mgl64.Vec3
	// Max is the maximum value per axis.
	Max mgl64.Vec3
}

// NewClamp returns a Clamp with every axis restricted to [min, max].
func NewClamp(min, max float64) *Clamp {
	return &Clamp{
		Min: mgl64.Vec3{min, min, min},
		Max: mgl64.Vec3{max, max, max},
	}
}

// ClampPos restricts all axes to positive numbers; negative values become 0.
func ClampPos() *Clamp {
	return NewClamp(0, math.MaxFloat64)
}

// ClampNeg restricts all axes to negative numbers; positive values become 0.
func ClampNeg() *Clamp {
	return NewClamp(-math.MaxFloat64, 0)
}

func (m *Clamp) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	v := value.AsAxis3D()
	for i := range v {
		v[i] = math.Min(math.Max(v[i], m.Min[i]), m.Max[i])
	}
	return action.FromVec3(v).Convert(value.Dim())
}
