package input

import "github.com/hajimehoshi/ebiten/v2"

// Backend supplies raw device state for one frame.
//
// Update is called once at the start of every frame, before any reads.
// Deltas (mouse motion, wheel) cover the span since the previous Update.
type Backend interface {
	Update()
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	MouseMotion() (dx, dy float64)
	WheelDelta() (dx, dy float64)
	GamepadIDs() []ebiten.GamepadID
	IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	GamepadButtonValue(id ebiten.GamepadID, button ebiten.StandardGamepadButton) float64
	GamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// EbitenBackend polls Ebitengine global input state.
type EbitenBackend struct {
	gamepadIDs []ebiten.GamepadID

	lastCursorX, lastCursorY int
	motionX, motionY         float64
	wheelX, wheelY           float64
	cursorSeen               bool
}

// NewEbitenBackend returns a backend reading from the Ebitengine window.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

func (b *EbitenBackend) Update() {
	b.gamepadIDs = ebiten.AppendGamepadIDs(b.gamepadIDs[:0])

	x, y := ebiten.CursorPosition()
	if b.cursorSeen {
		b.motionX = float64(x - b.lastCursorX)
		b.motionY = float64(y - b.lastCursorY)
	}
	b.lastCursorX, b.lastCursorY = x, y
	b.cursorSeen = true

	b.wheelX, b.wheelY = ebiten.Wheel()
}

func (b *EbitenBackend) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (b *EbitenBackend) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (b *EbitenBackend) MouseMotion() (dx, dy float64) {
	return b.motionX, b.motionY
}

func (b *EbitenBackend) WheelDelta() (dx, dy float64) {
	return b.wheelX, b.wheelY
}

func (b *EbitenBackend) GamepadIDs() []ebiten.GamepadID {
	return b.gamepadIDs
}

func (b *EbitenBackend) IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (b *EbitenBackend) GamepadButtonValue(id ebiten.GamepadID, button ebiten.StandardGamepadButton) float64 {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}
	return ebiten.StandardGamepadButtonValue(id, button)
}

func (b *EbitenBackend) GamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// TestBackend is a scriptable backend for tests and headless hosts.
// The zero value is ready to use; all inputs start released.
type TestBackend struct {
	Keys           map[ebiten.Key]bool
	MouseButtons   map[ebiten.MouseButton]bool
	MotionX        float64
	MotionY        float64
	WheelX         float64
	WheelY         float64
	Gamepads       []ebiten.GamepadID
	GamepadButtons map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]float64
	GamepadAxes    map[ebiten.GamepadID]map[ebiten.StandardGamepadAxis]float64
}

func NewTestBackend() *TestBackend {
	return &TestBackend{
		Keys:           make(map[ebiten.Key]bool),
		MouseButtons:   make(map[ebiten.MouseButton]bool),
		GamepadButtons: make(map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]float64),
		GamepadAxes:    make(map[ebiten.GamepadID]map[ebiten.StandardGamepadAxis]float64),
	}
}

// SetKey presses or releases a keyboard key.
func (b *TestBackend) SetKey(key ebiten.Key, pressed bool) {
	b.Keys[key] = pressed
}

// SetGamepadButton sets the analog value of a gamepad button.
func (b *TestBackend) SetGamepadButton(id ebiten.GamepadID, button ebiten.StandardGamepadButton, value float64) {
	buttons := b.GamepadButtons[id]
	if buttons == nil {
		buttons = make(map[ebiten.StandardGamepadButton]float64)
		b.GamepadButtons[id] = buttons
	}
	buttons[button] = value
}

// SetGamepadAxis sets the value of a gamepad axis.
func (b *TestBackend) SetGamepadAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis, value float64) {
	axes := b.GamepadAxes[id]
	if axes == nil {
		axes = make(map[ebiten.StandardGamepadAxis]float64)
		b.GamepadAxes[id] = axes
	}
	axes[axis] = value
}

func (b *TestBackend) Update() {}

func (b *TestBackend) IsKeyPressed(key ebiten.Key) bool {
	return b.Keys[key]
}

func (b *TestBackend) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return b.MouseButtons[button]
}

func (b *TestBackend) MouseMotion() (dx, dy float64) {
	return b.MotionX, b.MotionY
}

func (b *TestBackend) WheelDelta() (dx, dy float64) {
	return b.WheelX, b.WheelY
}

func (b *TestBackend) GamepadIDs() []ebiten.GamepadID {
	return b.Gamepads
}

func (b *TestBackend) IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return b.GamepadButtons[id][button] != 0
}

func (b *TestBackend) GamepadButtonValue(id ebiten.GamepadID, button ebiten.StandardGamepadButton) float64 {
	return b.GamepadButtons[id][button]
}

func (b *TestBackend) GamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return b.GamepadAxes[id][axis]
}
