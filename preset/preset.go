// Package preset builds common binding shapes: buttons composed into signed
// axes and 2D directions via Negate and SwizzleAxis modifiers, so WASD or a
// d-pad feed a single 2D action.
package preset

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wispfire/actionflow/engine"
	"github.com/wispfire/actionflow/input"
	"github.com/wispfire/actionflow/modifier"
)

// Bidirectional maps two buttons onto a signed 1D axis: positive reads +1,
// negative reads -1, both pressed cancel out under Cumulative accumulation.
type Bidirectional struct {
	Positive input.Binding
	Negative input.Binding
}

// Bindings expands the preset, appending the shared modifiers to each
// binding after its directional ones.
func (p Bidirectional) Bindings(shared ...modifier.Modifier) []*engine.Binding {
	return []*engine.Binding{
		engine.NewBinding(p.Positive).WithModifiers(shared...),
		engine.NewBinding(p.Negative).WithModifiers(modifier.NegateAll()).WithModifiers(shared...),
	}
}

// Axial maps two buttons onto separate axes of a 2D value: X stays on the
// first axis, Y is swizzled onto the second.
type Axial struct {
	X input.Binding
	Y input.Binding
}

func (p Axial) Bindings(shared ...modifier.Modifier) []*engine.Binding {
	return []*engine.Binding{
		engine.NewBinding(p.X).WithModifiers(shared...),
		engine.NewBinding(p.Y).WithModifiers(modifier.NewSwizzleAxis(modifier.SwizzleYXZ)).WithModifiers(shared...),
	}
}

// Cardinal maps four buttons onto a 2D value: east/west form the X axis,
// north/south form the Y axis. North is +Y, matching screen-up = positive.
type Cardinal struct {
	North input.Binding
	East  input.Binding
	South input.Binding
	West  input.Binding
}

// WASDKeys is the usual left-hand movement cluster.
func WASDKeys() Cardinal {
	return Cardinal{
		North: input.Key(ebiten.KeyW),
		West:  input.Key(ebiten.KeyA),
		South: input.Key(ebiten.KeyS),
		East:  input.Key(ebiten.KeyD),
	}
}

// ArrowKeys maps the arrow cluster.
func ArrowKeys() Cardinal {
	return Cardinal{
		North: input.Key(ebiten.KeyArrowUp),
		West:  input.Key(ebiten.KeyArrowLeft),
		South: input.Key(ebiten.KeyArrowDown),
		East:  input.Key(ebiten.KeyArrowRight),
	}
}

// DPadButtons maps the gamepad d-pad.
func DPadButtons() Cardinal {
	return Cardinal{
		North: input.GamepadButton(ebiten.StandardGamepadButtonLeftTop),
		West:  input.GamepadButton(ebiten.StandardGamepadButtonLeftLeft),
		South: input.GamepadButton(ebiten.StandardGamepadButtonLeftBottom),
		East:  input.GamepadButton(ebiten.StandardGamepadButtonLeftRight),
	}
}

func (p Cardinal) Bindings(shared ...modifier.Modifier) []*engine.Binding {
	x := Bidirectional{Positive: p.East, Negative: p.West}
	y := Bidirectional{Positive: p.North, Negative: p.South}

	out := x.Bindings(shared...)
	for _, b := range y.Bindings() {
		b.WithModifiers(modifier.NewSwizzleAxis(modifier.SwizzleYXZ)).WithModifiers(shared...)
		out = append(out, b)
	}
	return out
}

// Ordinal extends Cardinal with four diagonal buttons, each reading a full
// unit on both axes. Common for roguelikes.
type Ordinal struct {
	North     input.Binding
	NorthEast input.Binding
	East      input.Binding
	SouthEast input.Binding
	South     input.Binding
	SouthWest input.Binding
	West      input.Binding
	NorthWest input.Binding
}

// HJKLYUBN maps the vi-style movement keys with diagonals.
func HJKLYUBN() Ordinal {
	return Ordinal{
		North:     input.Key(ebiten.KeyK),
		NorthEast: input.Key(ebiten.KeyU),
		East:      input.Key(ebiten.KeyL),
		SouthEast: input.Key(ebiten.KeyN),
		South:     input.Key(ebiten.KeyJ),
		SouthWest: input.Key(ebiten.KeyB),
		West:      input.Key(ebiten.KeyH),
		NorthWest: input.Key(ebiten.KeyY),
	}
}

// Spatial maps six buttons onto a 3D value: left/right form the X axis,
// up/down form the Y axis, and forward/backward form the Z axis with
// backward positive, matching a right-handed -Z-forward camera.
type Spatial struct {
	Forward  input.Binding
	Backward input.Binding
	Left     input.Binding
	Right    input.Binding
	Up       input.Binding
	Down     input.Binding
}

// WASDAnd maps WASD for the horizontal plane and takes up/down bindings.
func WASDAnd(up, down input.Binding) Spatial {
	return Spatial{
		Forward:  input.Key(ebiten.KeyW),
		Backward: input.Key(ebiten.KeyS),
		Left:     input.Key(ebiten.KeyA),
		Right:    input.Key(ebiten.KeyD),
		Up:       up,
		Down:     down,
	}
}

// ArrowsAnd maps the arrow cluster for the horizontal plane and takes
// up/down bindings.
func ArrowsAnd(up, down input.Binding) Spatial {
	return Spatial{
		Forward:  input.Key(ebiten.KeyArrowUp),
		Backward: input.Key(ebiten.KeyArrowDown),
		Left:     input.Key(ebiten.KeyArrowLeft),
		Right:    input.Key(ebiten.KeyArrowRight),
		Up:       up,
		Down:     down,
	}
}

func (p Spatial) Bindings(shared ...modifier.Modifier) []*engine.Binding {
	xy := Cardinal{North: p.Up, East: p.Right, South: p.Down, West: p.Left}
	out := xy.Bindings(shared...)

	z := Bidirectional{Positive: p.Backward, Negative: p.Forward}
	for _, b := range z.Bindings() {
		b.WithModifiers(modifier.NewSwizzleAxis(modifier.SwizzleZYX)).WithModifiers(shared...)
		out = append(out, b)
	}
	return out
}

func (p Ordinal) Bindings(shared ...modifier.Modifier) []*engine.Binding {
	cardinal := Cardinal{North: p.North, East: p.East, South: p.South, West: p.West}
	out := cardinal.Bindings(shared...)

	diagonal := func(b input.Binding, mods ...modifier.Modifier) {
		binding := engine.NewBinding(b).
			WithModifiers(modifier.NewSwizzleAxis(modifier.SwizzleXXZ)).
			WithModifiers(mods...).
			WithModifiers(shared...)
		out = append(out, binding)
	}
	diagonal(p.NorthEast)
	diagonal(p.SouthEast, modifier.NegateY())
	diagonal(p.SouthWest, modifier.NegateAll())
	diagonal(p.NorthWest, modifier.NegateX())
	return out
}
