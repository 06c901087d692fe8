package condition

import "github.com/wispfire/actionflow/action"

// timer accumulates held time for timed conditions. It ticks with either
// virtual or real frame time and reports completion edges.
type timer struct {
	timeKind action.TimeKind
	elapsed  float64
	duration float64
	finished bool
	// justFinished is true only on the tick that crossed the duration.
	justFinished bool
}

func newTimer(duration float64) timer {
	return timer{duration: duration}
}

func (tm *timer) tick(t action.FrameTime) {
	if tm.finished {
		tm.justFinished = false
		return
	}
	tm.elapsed += t.DeltaKind(tm.timeKind).Seconds()
	if tm.elapsed >= tm.duration {
		tm.finished = true
		tm.justFinished = true
	}
}

func (tm *timer) reset() {
	tm.elapsed = 0
	tm.finished = false
	tm.justFinished = false
}
