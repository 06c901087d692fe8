package action

// Record is a read-only snapshot of a sibling action, as seen by conditions
// and modifiers that reference other actions in the same context.
type Record struct {
	State  State
	Value  Value
	Events Events
	Timing Timing
}

// View resolves sibling actions by name during evaluation.
//
// Conditions like Chord and BlockBy and modifiers like AccumulateBy look up
// the actions they reference through this interface. A missing name is a
// configuration error handled by the caller, never a panic.
type View interface {
	Lookup(name string) (Record, bool)
}
