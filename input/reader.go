// Package input captures raw device state into per-frame snapshots keyed by
// physical input identity, and tracks which inputs higher-priority contexts
// have consumed within the current frame.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wispfire/actionflow/action"
)

// Reader reads binding values from a Backend for one frame at a time.
//
// Actions read binding values through the reader and optionally consume
// them, hiding the input from lower-priority contexts until the next frame.
type Reader struct {
	backend  Backend
	gamepad  GamepadDevice
	consumed consumedInputs
}

// NewReader returns a reader over the given backend.
func NewReader(backend Backend) *Reader {
	return &Reader{
		backend:  backend,
		consumed: newConsumedInputs(),
	}
}

// BeginFrame polls the backend and clears the consumed set.
// Call exactly once at the start of every logic frame.
func (r *Reader) BeginFrame() {
	r.backend.Update()
	r.consumed.clear()
	r.gamepad = AnyGamepad()
}

// SetGamepad sets the gamepad filter for subsequent reads. The filter is
// per-context and must be set before reading that context's bindings.
func (r *Reader) SetGamepad(device GamepadDevice) {
	r.gamepad = device
}

// Value reads the current value of a binding, honoring modifier keys, the
// gamepad filter, and inputs already consumed this frame.
func (r *Reader) Value(b Binding) action.Value {
	if r.consumed.contains(b) {
		return zeroFor(b.Kind())
	}

	switch b.Kind() {
	case KindKey:
		pressed := r.backend.IsKeyPressed(b.key) && r.modKeysPressed(b.mods)
		return action.Bool(pressed)
	case KindMouseButton:
		pressed := r.backend.IsMouseButtonPressed(b.mouse) && r.modKeysPressed(b.mods)
		return action.Bool(pressed)
	case KindMouseMotion:
		if !r.modKeysPressed(b.mods) {
			return action.Axis2D(0, 0)
		}
		dx, dy := r.backend.MouseMotion()
		return action.Axis2D(dx, dy)
	case KindMouseWheel:
		if !r.modKeysPressed(b.mods) {
			return action.Axis2D(0, 0)
		}
		dx, dy := r.backend.WheelDelta()
		return action.Axis2D(dx, dy)
	case KindGamepadButton:
		value := 0.0
		for _, id := range r.backend.GamepadIDs() {
			if !r.gamepad.Matches(id) {
				continue
			}
			if v := r.backend.GamepadButtonValue(id, b.gamepadBtn); v > value {
				value = v
			}
		}
		return action.Axis1D(value)
	case KindGamepadAxis:
		// Sum across matching gamepads so a second idle pad doesn't
		// dampen the active one.
		value := 0.0
		for _, id := range r.backend.GamepadIDs() {
			if !r.gamepad.Matches(id) {
				continue
			}
			value += r.backend.GamepadAxisValue(id, b.gamepadAx)
		}
		return action.Axis1D(value)
	default:
		return action.Bool(false)
	}
}

// Consume hides the binding's physical input from all later reads this
// frame. Consuming a binding with modifier keys also hides every binding
// sharing any of those modifiers.
func (r *Reader) Consume(b Binding) {
	r.consumed.add(b)
}

func (r *Reader) modKeysPressed(mods ModKeys) bool {
	for _, pair := range mods.Keys() {
		if !r.backend.IsKeyPressed(pair[0]) && !r.backend.IsKeyPressed(pair[1]) {
			return false
		}
	}
	return true
}

func zeroFor(kind Kind) action.Value {
	switch kind {
	case KindMouseMotion, KindMouseWheel:
		return action.Axis2D(0, 0)
	case KindGamepadButton, KindGamepadAxis:
		return action.Axis1D(0)
	default:
		return action.Bool(false)
	}
}

// consumedInputs records the inputs consumed during one frame's walk.
// It is owned exclusively by the reader and cleared at frame start.
type consumedInputs struct {
	keys         map[ebiten.Key]struct{}
	mouseButtons map[ebiten.MouseButton]struct{}
	mouseMotion  bool
	mouseWheel   bool
	gamepadBtns  map[ebiten.StandardGamepadButton]struct{}
	gamepadAxes  map[ebiten.StandardGamepadAxis]struct{}
	modKeys      ModKeys
}

func newConsumedInputs() consumedInputs {
	return consumedInputs{
		keys:         make(map[ebiten.Key]struct{}),
		mouseButtons: make(map[ebiten.MouseButton]struct{}),
		gamepadBtns:  make(map[ebiten.StandardGamepadButton]struct{}),
		gamepadAxes:  make(map[ebiten.StandardGamepadAxis]struct{}),
	}
}

func (c *consumedInputs) add(b Binding) {
	switch b.Kind() {
	case KindKey:
		c.keys[b.key] = struct{}{}
		c.modKeys |= b.mods
	case KindMouseButton:
		c.mouseButtons[b.mouse] = struct{}{}
		c.modKeys |= b.mods
	case KindMouseMotion:
		c.mouseMotion = true
		c.modKeys |= b.mods
	case KindMouseWheel:
		c.mouseWheel = true
		c.modKeys |= b.mods
	case KindGamepadButton:
		c.gamepadBtns[b.gamepadBtn] = struct{}{}
	case KindGamepadAxis:
		c.gamepadAxes[b.gamepadAx] = struct{}{}
	}
}

func (c *consumedInputs) contains(b Binding) bool {
	switch b.Kind() {
	case KindKey:
		if _, ok := c.keys[b.key]; ok {
			return true
		}
		return c.modKeys.Intersects(b.mods)
	case KindMouseButton:
		if _, ok := c.mouseButtons[b.mouse]; ok {
			return true
		}
		return c.modKeys.Intersects(b.mods)
	case KindMouseMotion:
		return c.mouseMotion || c.modKeys.Intersects(b.mods)
	case KindMouseWheel:
		return c.mouseWheel || c.modKeys.Intersects(b.mods)
	case KindGamepadButton:
		_, ok := c.gamepadBtns[b.gamepadBtn]
		return ok
	case KindGamepadAxis:
		_, ok := c.gamepadAxes[b.gamepadAx]
		return ok
	default:
		return false
	}
}

func (c *consumedInputs) clear() {
	clear(c.keys)
	clear(c.mouseButtons)
	clear(c.gamepadBtns)
	clear(c.gamepadAxes)
	c.mouseMotion = false
	c.mouseWheel = false
	c.modKeys = 0
}
