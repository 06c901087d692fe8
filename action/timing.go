package action

// Timing tracks how long an action has been active.
type Timing struct {
	// ElapsedSecs is the time the action spent in Ongoing and Fired states.
	ElapsedSecs float64
	// FiredSecs is the time the action spent in the Fired state.
	FiredSecs float64
}

// Update advances the counters by deltaSecs based on the given state.
// Both counters reset when the state is None.
func (t *Timing) Update(deltaSecs float64, state State) {
	switch state {
	case None:
		t.ElapsedSecs = 0
		t.FiredSecs = 0
	case Ongoing:
		t.ElapsedSecs += deltaSecs
		t.FiredSecs = 0
	case Fired:
		t.ElapsedSecs += deltaSecs
		t.FiredSecs += deltaSecs
	}
}
