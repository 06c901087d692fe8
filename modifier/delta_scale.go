package modifier

import "github.com/wispfire/actionflow/action"

// DeltaScale multiplies the value by this frame's virtual delta time in
// seconds, turning a rate into a per-frame displacement.
type DeltaScale struct{}

func (DeltaScale) Apply(_ action.View, t action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	return action.FromVec3(value.AsAxis3D().Mul(t.DeltaSecs())).Convert(value.Dim())
}
