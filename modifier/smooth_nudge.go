package modifier

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// snapDistanceSq is the squared distance below which smoothing snaps to the
// target instead of creeping toward it forever.
const snapDistanceSq = 1e-4

// SmoothNudge interpolates toward the target value with exponential decay,
// framerate-independently: current += (target - current) * (1 - e^(-decay*dt)).
type SmoothNudge struct {
	// DecayRate is the multiplier for delta time; higher is snappier.
	DecayRate float64

	current mgl64.Vec3
}

// NewSmoothNudge returns a SmoothNudge with the default decay rate of 8,
// an ad-hoc value that usually produces nice results.
func NewSmoothNudge() *SmoothNudge {
	return &SmoothNudge{DecayRate: 8}
}

func (m *SmoothNudge) Apply(_ action.View, t action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	target := value.AsAxis3D()

	diff := target.Sub(m.current)
	if diff.Dot(diff) < snapDistanceSq {
		m.current = target
		return value
	}

	blend := 1 - math.Exp(-m.DecayRate*t.DeltaSecs())
	m.current = m.current.Add(diff.Mul(blend))
	return action.FromVec3(m.current).Convert(value.Dim())
}
