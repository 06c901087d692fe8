package action

import "fmt"

// State is the activation state of an action.
//
// States are totally ordered (None < Ongoing < Fired) so that condition
// results can be max-reduced during evaluation.
type State int

const (
	// None means the action is inactive.
	None State = iota
	// Ongoing means the action is in progress but its trigger conditions
	// are not yet satisfied, e.g. a Hold condition partway through.
	Ongoing
	// Fired means the trigger conditions were satisfied this frame.
	Fired
)

func (s State) String() string {
	switch s {
	case None:
		return "None"
	case Ongoing:
		return "Ongoing"
	case Fired:
		return "Fired"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Accumulation defines how Values are combined when multiple bindings of one
// action are evaluated with the same most significant State (excluding None).
type Accumulation int

const (
	// Cumulative adds the values per axis.
	//
	// Usually used for things like WASD movement, when pressing opposite
	// keys should cancel each other out.
	Cumulative Accumulation = iota
	// MaxAbs takes the value with the highest absolute value per axis.
	MaxAbs
)

func (a Accumulation) String() string {
	switch a {
	case Cumulative:
		return "Cumulative"
	case MaxAbs:
		return "MaxAbs"
	default:
		return fmt.Sprintf("Accumulation(%d)", int(a))
	}
}
