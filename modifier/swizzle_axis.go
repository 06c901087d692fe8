package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/wispfire/actionflow/action"
)

// Swizzle names a reordering (or duplication) of value axes.
type Swizzle uint8

const (
	// SwizzleYXZ swaps X and Y, mapping a horizontal input onto the
	// vertical axis. The most common pick for composing 2D movement from
	// 1D sources.
	SwizzleYXZ Swizzle = iota
	SwizzleZYX
	SwizzleXZY
	SwizzleYZX
	SwizzleZXY
	SwizzleXXY
	SwizzleXXZ
	SwizzleYYX
	SwizzleYYZ
	SwizzleZZX
	SwizzleZZY
	SwizzleXXX
	SwizzleYYY
	SwizzleZZZ
)

// perms maps each swizzle to the source axis index feeding each output axis.
var perms = [...][3]int{
	SwizzleYXZ: {1, 0, 2},
	SwizzleZYX: {2, 1, 0},
	SwizzleXZY: {0, 2, 1},
	SwizzleYZX: {1, 2, 0},
	SwizzleZXY: {2, 0, 1},
	SwizzleXXY: {0, 0, 1},
	SwizzleXXZ: {0, 0, 2},
	SwizzleYYX: {1, 1, 0},
	SwizzleYYZ: {1, 1, 2},
	SwizzleZZX: {2, 2, 0},
	SwizzleZZY: {2, 2, 1},
	SwizzleXXX: {0, 0, 0},
	SwizzleYYY: {1, 1, 1},
	SwizzleZZZ: {2, 2, 2},
}

// SwizzleAxis reorders value axes. Boolean input is widened to a 1D axis
// first; the output dimension grows just enough to hold the highest axis the
// swizzle moves a live component into.
type SwizzleAxis struct {
	Swizzle Swizzle
}

// NewSwizzleAxis returns a SwizzleAxis applying the given reorder.
func NewSwizzleAxis(s Swizzle) *SwizzleAxis {
	return &SwizzleAxis{Swizzle: s}
}

func (m *SwizzleAxis) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	perm := perms[m.Swizzle]

	in := value.AsAxis3D()
	var out mgl64.Vec3
	for i := range out {
		out[i] = in[perm[i]]
	}

	return action.FromVec3(out).Convert(swizzledDim(value.Dim(), perm))
}

// swizzledDim computes the output dimension: the highest output axis that a
// component present in the input lands on.
func swizzledDim(dim action.Dim, perm [3]int) action.Dim {
	components := 0
	switch dim {
	case action.DimAxis1D:
		components = 1
	case action.DimAxis2D:
		components = 2
	case action.DimAxis3D:
		return action.DimAxis3D
	}

	highest := -1
	for i, src := range perm {
		if src < components {
			highest = i
		}
	}
	switch highest {
	case 0:
		return action.DimAxis1D
	case 1:
		return action.DimAxis2D
	case 2:
		return action.DimAxis3D
	}
	return dim
}
