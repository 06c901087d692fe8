package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies the physical source of a Binding.
type Kind int

const (
	// KindNone matches no input and always reads as released.
	// Useful for expressing unbound slots in presets and rebindable settings.
	KindNone Kind = iota
	KindKey
	KindMouseButton
	KindMouseMotion
	KindMouseWheel
	KindGamepadButton
	KindGamepadAxis
)

// Binding is the identity of one physical input source, plus the modifier
// keys that must be held for it to actuate.
//
// Bindings are comparable values: two bindings are the same physical input
// exactly when they are ==, which is what consumption lookups rely on.
type Binding struct {
	kind       Kind
	key        ebiten.Key
	mouse      ebiten.MouseButton
	gamepadBtn ebiten.StandardGamepadButton
	gamepadAx  ebiten.StandardGamepadAxis
	mods       ModKeys
}

// None returns a binding that never actuates.
func None() Binding {
	return Binding{}
}

// Key returns a keyboard binding, captured as Bool.
func Key(key ebiten.Key) Binding {
	return Binding{kind: KindKey, key: key}
}

// MouseButton returns a mouse button binding, captured as Bool.
func MouseButton(button ebiten.MouseButton) Binding {
	return Binding{kind: KindMouseButton, mouse: button}
}

// MouseMotion returns a binding to the cursor movement delta, captured as Axis2D.
func MouseMotion() Binding {
	return Binding{kind: KindMouseMotion}
}

// MouseWheel returns a binding to the scroll delta, captured as Axis2D.
// Vertical scroll maps to the Y axis; apply modifier.SwizzleYXZ to bind it
// to a one-dimensional action.
func MouseWheel() Binding {
	return Binding{kind: KindMouseWheel}
}

// GamepadButton returns a standard-layout gamepad button binding, captured
// as Axis1D with the button's analog value.
func GamepadButton(button ebiten.StandardGamepadButton) Binding {
	return Binding{kind: KindGamepadButton, gamepadBtn: button}
}

// GamepadAxis returns a standard-layout gamepad axis binding, captured as Axis1D.
func GamepadAxis(axis ebiten.StandardGamepadAxis) Binding {
	return Binding{kind: KindGamepadAxis, gamepadAx: axis}
}

// WithModKeys returns a copy of the binding that only actuates while the
// given modifier keys are held. Gamepad bindings do not support modifier
// keys; requesting them is a configuration error reported by the reader.
func (b Binding) WithModKeys(mods ModKeys) Binding {
	switch b.kind {
	case KindKey, KindMouseButton, KindMouseMotion, KindMouseWheel:
		b.mods = mods
	}
	return b
}

// Kind returns the physical source kind.
func (b Binding) Kind() Kind {
	return b.kind
}

// ModKeys returns the required modifier keys.
func (b Binding) ModKeys() ModKeys {
	return b.mods
}

// ModKeyCount returns how many modifier keys the binding requires. Actions
// whose bindings require more modifiers are evaluated first within a
// context, so that e.g. Ctrl+C can consume the key from a plain C binding.
func (b Binding) ModKeyCount() int {
	return b.mods.Count()
}

func (b Binding) String() string {
	var s string
	switch b.kind {
	case KindNone:
		return "None"
	case KindKey:
		s = "Key" + b.key.String()
	case KindMouseButton:
		s = fmt.Sprintf("MouseButton(%d)", b.mouse)
	case KindMouseMotion:
		s = "MouseMotion"
	case KindMouseWheel:
		s = "MouseWheel"
	case KindGamepadButton:
		s = fmt.Sprintf("GamepadButton(%d)", b.gamepadBtn)
	case KindGamepadAxis:
		s = fmt.Sprintf("GamepadAxis(%d)", b.gamepadAx)
	}
	if b.mods != 0 {
		s = b.mods.String() + "+" + s
	}
	return s
}
