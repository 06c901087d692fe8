package engine

import (
	"time"

	"github.com/wispfire/actionflow/action"
)

// MockSpan specifies how long a mocked action stays mocked.
type MockSpan struct {
	updates  uint32
	duration time.Duration
	manual   bool
}

// MockUpdates mocks for a fixed number of evaluations.
func MockUpdates(n uint32) MockSpan {
	return MockSpan{updates: n}
}

// MockFor mocks for a virtual-time duration.
func MockFor(d time.Duration) MockSpan {
	return MockSpan{duration: d}
}

// MockManual mocks until ClearMock is called.
func MockManual() MockSpan {
	return MockSpan{manual: true}
}

// mock overrides an action's evaluation result while active. Transition
// events still derive from the mocked state, so consumers can't tell a
// mocked action from a driven one.
type mock struct {
	state action.State
	value action.Value
	span  MockSpan
}

// tick consumes one evaluation from the span and reports whether the mock
// expired with it.
func (m *mock) tick(delta time.Duration) bool {
	switch {
	case m.span.manual:
		return false
	case m.span.updates > 0:
		m.span.updates--
		return m.span.updates == 0
	default:
		m.span.duration -= delta
		return m.span.duration <= 0
	}
}
