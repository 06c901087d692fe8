package engine

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/condition"
	"github.com/wispfire/actionflow/input"
	"github.com/wispfire/actionflow/modifier"
)

func frame(deltaSecs float64) action.FrameTime {
	d := time.Duration(deltaSecs * float64(time.Second))
	return action.FrameTime{Delta: d, RealDelta: d}
}

// harness wires a registry to a scriptable backend and runs frames.
type harness struct {
	backend  *input.TestBackend
	reader   *input.Reader
	registry *Registry
}

func newHarness() *harness {
	backend := input.NewTestBackend()
	return &harness{
		backend:  backend,
		reader:   input.NewReader(backend),
		registry: NewRegistry(),
	}
}

func (h *harness) step(deltaSecs float64) []Transition {
	h.reader.BeginFrame()
	return h.registry.Evaluate(h.reader, frame(deltaSecs))
}

// arm runs one all-released frame so fresh bindings pass their ignored
// latch.
func (h *harness) arm() {
	h.step(0.1)
}

func TestActionFiresOnRawValue(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	jump, _ := ctx.Action("jump")

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	if jump.State() != action.Fired {
		t.Fatalf("pressed state = %v, want Fired", jump.State())
	}
	if !jump.Value().AsBool() {
		t.Fatal("pressed value should read true")
	}

	h.backend.SetKey(ebiten.KeySpace, false)
	h.step(0.1)
	if jump.State() != action.None {
		t.Fatalf("released state = %v, want None", jump.State())
	}
}

func TestTransitionEvents(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	h.backend.SetKey(ebiten.KeySpace, true)
	transitions := h.step(0.1)
	if len(transitions) != 1 {
		t.Fatalf("got %d transitions, want 1", len(transitions))
	}
	tr := transitions[0]
	if tr.Context != "gameplay" || tr.Action != "jump" || tr.Owner != 1 {
		t.Fatalf("transition identity = %+v", tr)
	}
	if !tr.Events.Contains(action.Started | action.FiredEvent) {
		t.Fatalf("press events = %v, want Started|Fired", tr.Events)
	}

	h.backend.SetKey(ebiten.KeySpace, false)
	transitions = h.step(0.1)
	if len(transitions) != 1 || !transitions[0].Events.Contains(action.Completed) {
		t.Fatalf("release transitions = %+v, want Completed", transitions)
	}
}

func TestIgnoredLatch(t *testing.T) {
	h := newHarness()
	// Key already held when the context is built.
	h.backend.SetKey(ebiten.KeySpace, true)

	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)

	jump, _ := ctx.Action("jump")

	h.step(0.1)
	if jump.State() != action.None {
		t.Fatalf("held-at-build state = %v, want None until released", jump.State())
	}

	h.backend.SetKey(ebiten.KeySpace, false)
	h.step(0.1)
	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	if jump.State() != action.Fired {
		t.Fatalf("state after release and re-press = %v, want Fired", jump.State())
	}
}

func TestAccumulation(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("move", action.DimAxis1D).
			To(
				NewBinding(input.Key(ebiten.KeyD)),
				NewBinding(input.Key(ebiten.KeyA)).WithModifiers(modifier.NegateAll()),
			))
	})
	h.registry.Add(1, ctx)
	h.arm()

	move, _ := ctx.Action("move")

	// Opposite keys cancel out under the default Cumulative policy.
	h.backend.SetKey(ebiten.KeyA, true)
	h.backend.SetKey(ebiten.KeyD, true)
	h.step(0.1)
	if got := move.Value().AsAxis1D(); got != 0 {
		t.Fatalf("cumulative opposite keys = %g, want 0", got)
	}

	h.backend.SetKey(ebiten.KeyA, false)
	h.step(0.1)
	if got := move.Value().AsAxis1D(); got != 1 {
		t.Fatalf("single key = %g, want 1", got)
	}
}

func TestAccumulationMaxAbs(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("zoom", action.DimAxis1D).
			WithAccumulation(action.MaxAbs).
			To(
				NewBinding(input.Key(ebiten.KeyQ)).WithModifiers(modifier.NewScale(0.5)),
				NewBinding(input.Key(ebiten.KeyE)).WithModifiers(modifier.NewScale(-2)),
			))
	})
	h.registry.Add(1, ctx)
	h.arm()

	zoom, _ := ctx.Action("zoom")

	h.backend.SetKey(ebiten.KeyQ, true)
	h.backend.SetKey(ebiten.KeyE, true)
	h.step(0.1)
	if got := zoom.Value().AsAxis1D(); got != -2 {
		t.Fatalf("max abs = %g, want -2", got)
	}
}

func TestPriorityConsumption(t *testing.T) {
	h := newHarness()

	menu := NewContext("menu", 10, func(c *Context) {
		c.AddAction(NewAction("confirm", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyEnter))))
	})
	gameplay := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("interact", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyEnter))))
	})
	h.registry.Add(1, menu)
	h.registry.Add(1, gameplay)
	h.arm()

	confirm, _ := menu.Action("confirm")
	interact, _ := gameplay.Action("interact")

	h.backend.SetKey(ebiten.KeyEnter, true)
	h.step(0.1)
	if confirm.State() != action.Fired {
		t.Fatalf("high priority state = %v, want Fired", confirm.State())
	}
	if interact.State() != action.None {
		t.Fatalf("low priority state = %v, want None (input consumed)", interact.State())
	}
}

func TestOngoingDoesNotConsume(t *testing.T) {
	h := newHarness()

	menu := NewContext("menu", 10, func(c *Context) {
		// Release holds Ongoing while the key is down, so it never
		// reaches Fired mid-hold and must not consume.
		c.AddAction(NewAction("back", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyEnter)).
				WithConditions(condition.NewRelease())))
	})
	gameplay := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("interact", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyEnter))))
	})
	h.registry.Add(1, menu)
	h.registry.Add(1, gameplay)
	h.arm()

	back, _ := menu.Action("back")
	interact, _ := gameplay.Action("interact")

	h.backend.SetKey(ebiten.KeyEnter, true)
	h.step(0.1)
	if back.State() != action.Ongoing {
		t.Fatalf("high priority state = %v, want Ongoing", back.State())
	}
	if interact.State() != action.Fired {
		t.Fatalf("low priority state = %v, want Fired (nothing consumed)", interact.State())
	}
}

func TestPassiveActionDoesNotConsume(t *testing.T) {
	h := newHarness()

	menu := NewContext("menu", 10, func(c *Context) {
		c.AddAction(NewAction("observe", action.DimBool).
			Passive().
			To(NewBinding(input.Key(ebiten.KeyEnter))))
	})
	gameplay := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("interact", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyEnter))))
	})
	h.registry.Add(1, menu)
	h.registry.Add(1, gameplay)
	h.arm()

	observe, _ := menu.Action("observe")
	interact, _ := gameplay.Action("interact")

	h.backend.SetKey(ebiten.KeyEnter, true)
	h.step(0.1)
	if observe.State() != action.Fired || interact.State() != action.Fired {
		t.Fatalf("states = %v, %v; want both Fired", observe.State(), interact.State())
	}
}

func TestEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	h := newHarness()

	first := NewContext("first", 5, func(c *Context) {
		c.AddAction(NewAction("act", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	second := NewContext("second", 5, func(c *Context) {
		c.AddAction(NewAction("act", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, first)
	h.registry.Add(1, second)
	h.arm()

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)

	firstAct, _ := first.Action("act")
	secondAct, _ := second.Action("act")
	if firstAct.State() != action.Fired {
		t.Fatalf("first registered = %v, want Fired", firstAct.State())
	}
	if secondAct.State() != action.None {
		t.Fatalf("second registered = %v, want None", secondAct.State())
	}
}

func TestModKeyPrecedenceWithinContext(t *testing.T) {
	h := newHarness()
	ctx := NewContext("editor", 0, func(c *Context) {
		// Declared after, but Ctrl+C must still win over bare C.
		c.AddAction(NewAction("type", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyC))))
		c.AddAction(NewAction("copy", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeyC).WithModKeys(input.ModControl))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	typeAct, _ := ctx.Action("type")
	copyAct, _ := ctx.Action("copy")

	h.backend.SetKey(ebiten.KeyC, true)
	h.backend.SetKey(ebiten.KeyControlLeft, true)
	h.step(0.1)
	if copyAct.State() != action.Fired {
		t.Fatalf("copy = %v, want Fired", copyAct.State())
	}
	if typeAct.State() != action.None {
		t.Fatalf("type = %v, want None (C consumed by copy)", typeAct.State())
	}

	h.backend.SetKey(ebiten.KeyC, false)
	h.backend.SetKey(ebiten.KeyControlLeft, false)
	h.step(0.1)

	h.backend.SetKey(ebiten.KeyC, true)
	h.step(0.1)
	if typeAct.State() != action.Fired {
		t.Fatalf("bare C: type = %v, want Fired", typeAct.State())
	}
	if copyAct.State() != action.None {
		t.Fatalf("bare C: copy = %v, want None", copyAct.State())
	}
}

func TestChordGatesAction(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("sprint", action.DimBool).
			Passive().
			To(NewBinding(input.Key(ebiten.KeyShiftLeft))))
		c.AddAction(NewAction("dash", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))).
			WithConditions(condition.NewChord("sprint")))
	})
	h.registry.Add(1, ctx)
	h.arm()

	dash, _ := ctx.Action("dash")

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	if dash.State() == action.Fired {
		t.Fatal("dash should not fire without the chorded action")
	}

	h.backend.SetKey(ebiten.KeyShiftLeft, true)
	h.step(0.1)
	if dash.State() != action.Fired {
		t.Fatalf("dash with sprint fired = %v, want Fired", dash.State())
	}
}

func TestBlockByBlocksState(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("dash", action.DimBool).
			Passive().
			To(NewBinding(input.Key(ebiten.KeyShiftLeft))))
		c.AddAction(NewAction("fire", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))).
			WithConditions(condition.NewBlockBy("dash")))
	})
	h.registry.Add(1, ctx)
	h.arm()

	fire, _ := ctx.Action("fire")

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	if fire.State() != action.Fired {
		t.Fatalf("unblocked = %v, want Fired", fire.State())
	}

	h.backend.SetKey(ebiten.KeyShiftLeft, true)
	h.step(0.1)
	if fire.State() != action.None {
		t.Fatalf("blocked = %v, want None", fire.State())
	}
}

func TestRebuildAllResetsAndRearms(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)

	transitions := h.registry.RebuildAll(frame(0.1))
	if len(transitions) != 1 || !transitions[0].Events.Contains(action.Completed) {
		t.Fatalf("rebuild transitions = %+v, want one Completed", transitions)
	}

	// Key still held across the rebuild: the fresh binding must stay
	// silent until the key is released once.
	jump, _ := ctx.Action("jump")
	h.step(0.1)
	if jump.State() != action.None {
		t.Fatalf("held across rebuild = %v, want None", jump.State())
	}
	if jump.Timing() != (action.Timing{}) {
		t.Fatalf("timing after rebuild = %+v, want zero", jump.Timing())
	}

	h.backend.SetKey(ebiten.KeySpace, false)
	h.step(0.1)
	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	if jump.State() != action.Fired {
		t.Fatalf("after re-press = %v, want Fired", jump.State())
	}
}

func TestRebuildAllKeepsGamepadFilter(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.GamepadButton(ebiten.StandardGamepadButtonRightBottom))))
	})
	ctx.SetGamepad(input.NoGamepad())
	h.registry.Add(1, ctx)
	h.arm()

	h.registry.RebuildAll(frame(0.1))
	h.arm()

	h.backend.Gamepads = []ebiten.GamepadID{0}
	h.backend.SetGamepadButton(0, ebiten.StandardGamepadButtonRightBottom, 1)
	h.step(0.1)

	jump, _ := ctx.Action("jump")
	if jump.State() != action.None {
		t.Fatalf("state = %v, want None with the filter still excluding gamepads", jump.State())
	}
}

func TestSharedContextEvaluatedOnce(t *testing.T) {
	h := newHarness()
	ctx := NewContext("party", 0, func(c *Context) {
		c.AddAction(NewAction("cheer", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.registry.Add(2, ctx)
	h.arm()

	h.backend.SetKey(ebiten.KeySpace, true)
	transitions := h.step(0.1)
	if len(transitions) != 1 {
		t.Fatalf("shared context raised %d transitions, want 1", len(transitions))
	}
	if transitions[0].Owner != 1 {
		t.Fatalf("attributed owner = %d, want first registered", transitions[0].Owner)
	}
}

func TestRemoveLastOwnerResets(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.registry.Add(2, ctx)
	h.arm()

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)

	// Still shared by owner 2: no reset yet.
	if transitions := h.registry.Remove(1, "gameplay", frame(0.1)); len(transitions) != 0 {
		t.Fatalf("removing a shared owner reset the context: %+v", transitions)
	}

	transitions := h.registry.Remove(2, "gameplay", frame(0.1))
	if len(transitions) != 1 || !transitions[0].Events.Contains(action.Completed) {
		t.Fatalf("final removal transitions = %+v, want one Completed", transitions)
	}
	if h.registry.Len() != 0 {
		t.Fatalf("registry length = %d, want 0", h.registry.Len())
	}
}

func TestAddDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration should panic")
		}
	}()
	r := NewRegistry()
	ctx := NewContext("gameplay", 0, nil)
	r.Add(1, ctx)
	r.Add(1, NewContext("gameplay", 0, nil))
}

func TestRemoveMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("removing a missing instance should panic")
		}
	}()
	NewRegistry().Remove(1, "nope", frame(0))
}

func TestMock(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("jump", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	jump, _ := ctx.Action("jump")
	jump.Mock(action.Fired, action.Bool(true), MockUpdates(2))

	h.step(0.1)
	if jump.State() != action.Fired || !jump.Value().AsBool() {
		t.Fatalf("mocked frame 1 = %v %v", jump.State(), jump.Value())
	}
	h.step(0.1)
	if jump.State() != action.Fired {
		t.Fatalf("mocked frame 2 = %v, want Fired", jump.State())
	}

	// Mock expired: the untouched key reads released again.
	h.step(0.1)
	if jump.State() != action.None {
		t.Fatalf("after mock expiry = %v, want None", jump.State())
	}
}

func TestActionTiming(t *testing.T) {
	h := newHarness()
	ctx := NewContext("gameplay", 0, func(c *Context) {
		c.AddAction(NewAction("charge", action.DimBool).
			To(NewBinding(input.Key(ebiten.KeySpace))))
	})
	h.registry.Add(1, ctx)
	h.arm()

	charge, _ := ctx.Action("charge")

	h.backend.SetKey(ebiten.KeySpace, true)
	h.step(0.1)
	h.step(0.1)
	h.step(0.1)

	// Timing counts completed frames in the state, so three evaluations
	// after the press accumulate two deltas.
	timing := charge.Timing()
	if timing.FiredSecs < 0.19 || timing.FiredSecs > 0.21 {
		t.Fatalf("fired secs = %g, want ~0.2", timing.FiredSecs)
	}
}

func TestTrackerImplicitCapping(t *testing.T) {
	view := fakeView{"gate": {State: action.Ongoing}}

	tr := newTracker(action.Bool(true))
	tr.applyConditions(view, frame(0.1), []condition.Condition{
		condition.NewDown(),
		condition.NewChord("gate"),
	})

	// Explicit fired but the implicit chord is only Ongoing: capped.
	if got := tr.state(); got != action.Ongoing {
		t.Fatalf("capped state = %v, want Ongoing", got)
	}
}

func TestTrackerBlockerWins(t *testing.T) {
	view := fakeView{"block": {State: action.Fired}}

	tr := newTracker(action.Bool(true))
	tr.applyConditions(view, frame(0.1), []condition.Condition{
		condition.NewDown(),
		condition.NewBlockBy("block"),
	})
	if got := tr.state(); got != action.None {
		t.Fatalf("blocked state = %v, want None", got)
	}
}

type fakeView map[string]action.Record

func (v fakeView) Lookup(name string) (action.Record, bool) {
	r, ok := v[name]
	return r, ok
}
