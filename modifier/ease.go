package modifier

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/wispfire/actionflow/action"
)

// Ease shapes each axis through an easing curve, preserving sign. The input
// magnitude is clamped to [0, 1] before evaluation since easing functions are
// defined on that range.
type Ease struct {
	// Curve is the easing function to run each axis through.
	Curve ease.TweenFunc
}

// NewEase returns an Ease applying the given curve, e.g. ease.InQuad for a
// gentle start or ease.OutExpo for a fast attack.
func NewEase(curve ease.TweenFunc) *Ease {
	return &Ease{Curve: curve}
}

func (m *Ease) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	v := value.AsAxis3D()
	for i := range v {
		t := math.Min(math.Abs(v[i]), 1)
		eased := float64(m.Curve(float32(t), 0, 1, 1))
		v[i] = math.Copysign(eased, v[i])
	}
	return action.FromVec3(v).Convert(value.Dim())
}
