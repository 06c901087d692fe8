package action

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Dim is the dimensionality of a Value.
//
// Values can always be widened to a higher dimension (Bool becomes 1.0/0.0,
// Axis1D becomes (x, 0, 0) and so on) but are never narrowed implicitly;
// use SwizzleAxis or Convert for that.
type Dim int

const (
	DimBool Dim = iota
	DimAxis1D
	DimAxis2D
	DimAxis3D
)

func (d Dim) String() string {
	switch d {
	case DimBool:
		return "Bool"
	case DimAxis1D:
		return "Axis1D"
	case DimAxis2D:
		return "Axis2D"
	case DimAxis3D:
		return "Axis3D"
	default:
		return fmt.Sprintf("Dim(%d)", int(d))
	}
}

// Value is an input or action value at one of four dimensionalities.
//
// Values are ephemeral: they are recomputed every evaluation and never
// persisted across rebuilds. The zero Value is a released Bool.
type Value struct {
	dim Dim
	vec mgl64.Vec3
}

// Bool returns a boolean Value.
func Bool(pressed bool) Value {
	v := Value{dim: DimBool}
	if pressed {
		v.vec[0] = 1
	}
	return v
}

// Axis1D returns a one-dimensional Value.
func Axis1D(x float64) Value {
	return Value{dim: DimAxis1D, vec: mgl64.Vec3{x, 0, 0}}
}

// Axis2D returns a two-dimensional Value.
func Axis2D(x, y float64) Value {
	return Value{dim: DimAxis2D, vec: mgl64.Vec3{x, y, 0}}
}

// Axis3D returns a three-dimensional Value.
func Axis3D(x, y, z float64) Value {
	return Value{dim: DimAxis3D, vec: mgl64.Vec3{x, y, z}}
}

// FromVec2 returns a two-dimensional Value from a vector.
func FromVec2(v mgl64.Vec2) Value {
	return Axis2D(v.X(), v.Y())
}

// FromVec3 returns a three-dimensional Value from a vector.
func FromVec3(v mgl64.Vec3) Value {
	return Value{dim: DimAxis3D, vec: v}
}

// Zero returns the zero Value of the given dimension.
func Zero(dim Dim) Value {
	return Value{dim: dim}
}

// Dim returns the dimensionality of the value.
func (v Value) Dim() Dim {
	return v.dim
}

// AsBool reports whether any component of the value is non-zero.
func (v Value) AsBool() bool {
	return v.vec != mgl64.Vec3{}
}

// AsAxis1D returns the first component.
func (v Value) AsAxis1D() float64 {
	return v.vec[0]
}

// AsAxis2D returns the first two components.
func (v Value) AsAxis2D() mgl64.Vec2 {
	return mgl64.Vec2{v.vec[0], v.vec[1]}
}

// AsAxis3D returns all three components, zero-filling missing axes.
func (v Value) AsAxis3D() mgl64.Vec3 {
	return v.vec
}

// Convert returns the value converted to the given dimension.
//
// Widening zero-fills the new axes. Narrowing drops the extra axes, except
// for DimBool, which reports whether any component was non-zero.
func (v Value) Convert(dim Dim) Value {
	switch dim {
	case DimBool:
		return Bool(v.AsBool())
	case DimAxis1D:
		return Axis1D(v.vec[0])
	case DimAxis2D:
		return Axis2D(v.vec[0], v.vec[1])
	case DimAxis3D:
		return Value{dim: DimAxis3D, vec: v.vec}
	default:
		return Zero(dim)
	}
}

// IsActuated reports whether the value magnitude meets the actuation threshold.
func (v Value) IsActuated(actuation float64) bool {
	return v.vec.Dot(v.vec) >= actuation*actuation
}

func (v Value) String() string {
	switch v.dim {
	case DimBool:
		return fmt.Sprintf("Bool(%t)", v.AsBool())
	case DimAxis1D:
		return fmt.Sprintf("Axis1D(%g)", v.vec[0])
	case DimAxis2D:
		return fmt.Sprintf("Axis2D(%g, %g)", v.vec[0], v.vec[1])
	default:
		return fmt.Sprintf("Axis3D(%g, %g, %g)", v.vec[0], v.vec[1], v.vec[2])
	}
}
