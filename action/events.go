package action

import "strings"

// Events is a bitset of transition events produced by one state update.
//
// A single update can raise more than one event, e.g. a condition that goes
// straight from None to Fired raises Started|Fired in the same frame.
//
// Transition table:
//
//	None    -> None     no events
//	None    -> Ongoing  Started | Ongoing
//	None    -> Fired    Started | Fired
//	Ongoing -> None     Canceled
//	Ongoing -> Ongoing  Ongoing
//	Ongoing -> Fired    Fired
//	Fired   -> None     Completed
//	Fired   -> Ongoing  Ongoing
//	Fired   -> Fired    Fired
type Events uint8

const (
	// Started is raised when the state leaves None.
	Started Events = 1 << iota
	// OngoingEvent is raised every frame the state is Ongoing.
	OngoingEvent
	// FiredEvent is raised every frame the state is Fired.
	FiredEvent
	// Canceled is raised when the state drops from Ongoing to None.
	Canceled
	// Completed is raised when the state drops from Fired to None.
	Completed
)

// Transition derives the events for a state change.
func Transition(previous, current State) Events {
	switch {
	case previous == None && current == Ongoing:
		return Started | OngoingEvent
	case previous == None && current == Fired:
		return Started | FiredEvent
	case previous == Ongoing && current == None:
		return Canceled
	case previous == Fired && current == None:
		return Completed
	case current == Ongoing:
		return OngoingEvent
	case current == Fired:
		return FiredEvent
	default:
		return 0
	}
}

// Contains reports whether all events in mask are set.
func (e Events) Contains(mask Events) bool {
	return e&mask == mask
}

func (e Events) String() string {
	if e == 0 {
		return "(none)"
	}
	names := make([]string, 0, 5)
	for _, f := range [...]struct {
		bit  Events
		name string
	}{
		{Started, "Started"},
		{OngoingEvent, "Ongoing"},
		{FiredEvent, "Fired"},
		{Canceled, "Canceled"},
		{Completed, "Completed"},
	} {
		if e&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}
