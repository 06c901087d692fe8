package input

import "github.com/hajimehoshi/ebiten/v2"

type gamepadMode int

const (
	gamepadAny gamepadMode = iota
	gamepadSingle
	gamepadNone
)

// GamepadDevice filters which gamepads a context reads from.
//
// With AnyGamepad, axis values are summed across all connected gamepads and
// a button reads pressed if any gamepad has it pressed.
type GamepadDevice struct {
	mode gamepadMode
	id   ebiten.GamepadID
}

// AnyGamepad matches input from every connected gamepad.
func AnyGamepad() GamepadDevice {
	return GamepadDevice{}
}

// SingleGamepad matches input from one specific gamepad.
func SingleGamepad(id ebiten.GamepadID) GamepadDevice {
	return GamepadDevice{mode: gamepadSingle, id: id}
}

// NoGamepad ignores all gamepad input.
func NoGamepad() GamepadDevice {
	return GamepadDevice{mode: gamepadNone}
}

// Matches reports whether input from the given gamepad should be read.
func (d GamepadDevice) Matches(id ebiten.GamepadID) bool {
	switch d.mode {
	case gamepadSingle:
		return d.id == id
	case gamepadNone:
		return false
	default:
		return true
	}
}
