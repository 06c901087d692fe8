package modifier

import "github.com/wispfire/actionflow/action"

// Negate inverts the value per axis.
type Negate struct {
	X, Y, Z bool
}

// NegateAll inverts every axis.
func NegateAll() *Negate {
	return &Negate{X: true, Y: true, Z: true}
}

// NegateX inverts only the X axis.
func NegateX() *Negate {
	return &Negate{X: true}
}

// NegateY inverts only the Y axis.
func NegateY() *Negate {
	return &Negate{Y: true}
}

// NegateZ inverts only the Z axis.
func NegateZ() *Negate {
	return &Negate{Z: true}
}

func (m *Negate) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	v := value.AsAxis3D()
	if m.X {
		v[0] = -v[0]
	}
	if m.Y {
		v[1] = -v[1]
	}
	if m.Z {
		v[2] = -v[2]
	}
	return action.FromVec3(v).Convert(value.Dim())
}
