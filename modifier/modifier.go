// Package modifier provides value transforms applied in declaration order to
// raw or combined input values, at binding or action scope.
//
// All arithmetic is per-axis. A Bool value is promoted to Axis1D before any
// numeric operation. Modifiers that carry smoothing or accumulation state own
// it per instance, so the same modifier value must not be shared between
// bindings.
package modifier

import (
	"log"

	"github.com/wispfire/actionflow/action"
)

// Modifier transforms a value once per evaluation frame.
type Modifier interface {
	Apply(actions action.View, t action.FrameTime, value action.Value) action.Value
}

// promote converts Bool to Axis1D so numeric ops see 1.0/0.0.
func promote(v action.Value) action.Value {
	if v.Dim() == action.DimBool {
		return v.Convert(action.DimAxis1D)
	}
	return v
}

// warnOnce logs a diagnostic a single time per call site flag. Misconfigured
// pipelines run every frame, so repeating the message would drown the log.
func warnOnce(flag *bool, format string, args ...any) {
	if *flag {
		return
	}
	*flag = true
	log.Printf(format, args...)
}
