// Package condition provides the evaluators that decide an action's state
// from its transformed input value.
//
// Conditions come in three kinds. Explicit conditions drive the state
// directly and compose by maximum. Implicit conditions cap the result: all
// of them must reach Fired for the action to fire. Blockers veto the result
// outright. Every condition is evaluated every frame, even for inputs that
// will not fire, so internal timers keep ticking.
package condition

import (
	"log"

	"github.com/wispfire/actionflow/action"
)

// DefaultActuation is the magnitude threshold above which an input counts as
// actuated when a condition does not set its own.
const DefaultActuation = 0.5

// Kind determines how a condition's result composes with its siblings.
type Kind int

const (
	// Explicit conditions drive the action state; the maximum across all
	// explicit results wins.
	Explicit Kind = iota
	// Implicit conditions gate firing: every implicit condition must
	// report Fired for the action to fire.
	Implicit
	// Blocker conditions veto: a non-Fired blocker result forces None.
	Blocker
)

// Condition maps a transformed input value to an action state, once per
// evaluation frame.
type Condition interface {
	Evaluate(actions action.View, t action.FrameTime, value action.Value) action.State
	Kind() Kind
}

// warnOnce logs a diagnostic a single time per call site flag. Conditions
// run every frame, so repeating the message would drown the log.
func warnOnce(flag *bool, format string, args ...any) {
	if *flag {
		return
	}
	*flag = true
	log.Printf(format, args...)
}
