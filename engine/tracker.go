package engine

import (
	"math"

	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/condition"
	"github.com/wispfire/actionflow/modifier"
)

// triggerTracker folds the results of one modifier-and-condition pipeline
// into an action state. One tracker is used per binding and one more for the
// action-level pipeline.
type triggerTracker struct {
	value             action.Value
	foundExplicit     bool
	anyExplicitFired  bool
	foundActive       bool
	foundImplicit     bool
	allImplicitsFired bool
	blocked           bool
}

func newTracker(value action.Value) triggerTracker {
	return triggerTracker{value: value, allImplicitsFired: true}
}

func (tr *triggerTracker) applyModifiers(actions action.View, t action.FrameTime, modifiers []modifier.Modifier) {
	for _, m := range modifiers {
		tr.value = m.Apply(actions, t, tr.value)
	}
}

// applyConditions evaluates every condition. No early outs permitted:
// conditions carry internal timers that must tick every frame.
func (tr *triggerTracker) applyConditions(actions action.View, t action.FrameTime, conditions []condition.Condition) {
	for _, c := range conditions {
		state := c.Evaluate(actions, t, tr.value)
		switch c.Kind() {
		case condition.Explicit:
			tr.foundExplicit = true
			tr.anyExplicitFired = tr.anyExplicitFired || state == action.Fired
			tr.foundActive = tr.foundActive || state != action.None
		case condition.Implicit:
			tr.foundImplicit = true
			tr.allImplicitsFired = tr.allImplicitsFired && state == action.Fired
			tr.foundActive = tr.foundActive || state != action.None
		case condition.Blocker:
			tr.blocked = tr.blocked || state == action.None
		}
	}
}

func (tr *triggerTracker) state() action.State {
	if tr.blocked {
		return action.None
	}

	// With no conditions at all, any non-zero value fires.
	if !tr.foundExplicit && !tr.foundImplicit {
		if tr.value.AsBool() {
			return action.Fired
		}
		return action.None
	}

	if (!tr.foundExplicit || tr.anyExplicitFired) && tr.allImplicitsFired {
		return action.Fired
	}
	if tr.foundActive {
		return action.Ongoing
	}
	return action.None
}

// overwrite replaces the tracker with other, preserving the value dimension.
func (tr *triggerTracker) overwrite(other triggerTracker) {
	dim := tr.value.Dim()
	*tr = other
	tr.value = tr.value.Convert(dim)
}

// combine merges another tracker with the same state, accumulating values
// per the given policy and preserving the value dimension.
func (tr *triggerTracker) combine(other triggerTracker, acc action.Accumulation) {
	a := tr.value.AsAxis3D()
	b := other.value.AsAxis3D()
	switch acc {
	case action.MaxAbs:
		for i := range a {
			if math.Abs(a[i]) < math.Abs(b[i]) {
				a[i] = b[i]
			}
		}
	default:
		a = a.Add(b)
	}
	tr.value = action.FromVec3(a).Convert(tr.value.Dim())

	tr.foundExplicit = tr.foundExplicit || other.foundExplicit
	tr.anyExplicitFired = tr.anyExplicitFired || other.anyExplicitFired
	tr.foundActive = tr.foundActive || other.foundActive
	tr.foundImplicit = tr.foundImplicit || other.foundImplicit
	tr.allImplicitsFired = tr.allImplicitsFired && other.allImplicitsFired
	tr.blocked = tr.blocked || other.blocked
}
