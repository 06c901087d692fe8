package modifier

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// ExponentialCurve applies a simple exponential response curve per axis,
// preserving sign: sign(v) * |v|^exp.
type ExponentialCurve struct {
	// Exp is the curve exponent per axis.
	Exp mgl64.Vec3
}

// NewExponentialCurve returns a curve with every axis set to exp.
func NewExponentialCurve(exp float64) *ExponentialCurve {
	return &ExponentialCurve{Exp: mgl64.Vec3{exp, exp, exp}}
}

func (m *ExponentialCurve) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	v := value.AsAxis3D()
	for i := range v {
		v[i] = math.Copysign(math.Pow(math.Abs(v[i]), m.Exp[i]), v[i])
	}
	return action.FromVec3(v).Convert(value.Dim())
}
