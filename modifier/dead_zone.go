package modifier

import (
	"math"

	"github.com/wispfire/actionflow/action"
)

// DeadZoneKind defines how DeadZone processes axes.
type DeadZoneKind int

const (
	// RadialDeadZone applies the dead zone to the vector magnitude, giving
	// smooth circular coverage. For Axis1D and Bool it behaves like
	// AxialDeadZone.
	RadialDeadZone DeadZoneKind = iota
	// AxialDeadZone applies the dead zone to each axis individually, which
	// chamfers the corners of 2D input.
	AxialDeadZone
)

// DeadZone remaps input within [LowerThreshold, UpperThreshold] onto [0, 1],
// clamping values outside the range. It acts as a normalizer for both analog
// and digital inputs; apply at action scope to get consistent diagonal speed
// across input sources.
type DeadZone struct {
	Kind DeadZoneKind
	// LowerThreshold is the magnitude below which input reads as zero.
	LowerThreshold float64
	// UpperThreshold is the magnitude above which input clamps to 1.
	UpperThreshold float64
}

// NewDeadZone returns a DeadZone with the default 0.2..1.0 thresholds.
func NewDeadZone(kind DeadZoneKind) *DeadZone {
	return &DeadZone{Kind: kind, LowerThreshold: 0.2, UpperThreshold: 1.0}
}

func (m *DeadZone) deadZone(axis float64) float64 {
	lower := math.Max(math.Abs(axis)-m.LowerThreshold, 0)
	scaled := lower / (m.UpperThreshold - m.LowerThreshold)
	return math.Min(scaled, 1) * sign(axis)
}

func (m *DeadZone) Apply(_ action.View, _ action.FrameTime, value action.Value) action.Value {
	value = promote(value)
	switch value.Dim() {
	case action.DimAxis1D:
		return action.Axis1D(m.deadZone(value.AsAxis1D()))
	default:
		v := value.AsAxis3D()
		if m.Kind == AxialDeadZone {
			for i := range v {
				v[i] = m.deadZone(v[i])
			}
			return action.FromVec3(v).Convert(value.Dim())
		}
		length := v.Len()
		if length == 0 {
			return value
		}
		normalized := v.Mul(1 / length)
		return action.FromVec3(normalized.Mul(m.deadZone(length))).Convert(value.Dim())
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
