package action

import "time"

// TimeKind selects which frame delta a timed condition or modifier ticks with.
type TimeKind int

const (
	// VirtualTime is game time, affected by pausing and time scaling.
	VirtualTime TimeKind = iota
	// RealTime is wall-clock time, unaffected by pausing or scaling.
	RealTime
)

// FrameTime carries both frame deltas for one evaluation pass.
//
// Timed conditions tick exactly once per evaluation using the delta for
// their configured TimeKind.
type FrameTime struct {
	// Delta is the virtual (scaled) time elapsed since the last evaluation.
	Delta time.Duration
	// RealDelta is the wall-clock time elapsed since the last evaluation.
	RealDelta time.Duration
}

// DeltaKind returns the delta for the given time kind.
func (t FrameTime) DeltaKind(kind TimeKind) time.Duration {
	if kind == RealTime {
		return t.RealDelta
	}
	return t.Delta
}

// DeltaSecs returns the virtual delta in seconds.
func (t FrameTime) DeltaSecs() float64 {
	return t.Delta.Seconds()
}
