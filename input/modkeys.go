package input

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ModKeys is a bitset of keyboard modifiers. Each bit matches both the left
// and right key of the modifier.
type ModKeys uint8

const (
	ModAlt ModKeys = 1 << iota
	ModControl
	ModShift
	ModSuper
)

// ModKeysFrom converts a key into its modifier bit, or 0 if the key is not
// a modifier.
func ModKeysFrom(key ebiten.Key) ModKeys {
	switch key {
	case ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return ModAlt
	case ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return ModControl
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return ModShift
	case ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return ModSuper
	default:
		return 0
	}
}

// Count returns the number of set modifier bits.
func (m ModKeys) Count() int {
	n := 0
	for bits := m; bits != 0; bits &= bits - 1 {
		n++
	}
	return n
}

// Intersects reports whether any bit is shared with other.
func (m ModKeys) Intersects(other ModKeys) bool {
	return m&other != 0
}

// Keys returns the left/right key pairs for every set modifier bit.
func (m ModKeys) Keys() [][2]ebiten.Key {
	pairs := make([][2]ebiten.Key, 0, 4)
	if m&ModAlt != 0 {
		pairs = append(pairs, [2]ebiten.Key{ebiten.KeyAltLeft, ebiten.KeyAltRight})
	}
	if m&ModControl != 0 {
		pairs = append(pairs, [2]ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight})
	}
	if m&ModShift != 0 {
		pairs = append(pairs, [2]ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight})
	}
	if m&ModSuper != 0 {
		pairs = append(pairs, [2]ebiten.Key{ebiten.KeyMetaLeft, ebiten.KeyMetaRight})
	}
	return pairs
}

func (m ModKeys) String() string {
	if m == 0 {
		return "(none)"
	}
	names := make([]string, 0, 4)
	if m&ModAlt != 0 {
		names = append(names, "Alt")
	}
	if m&ModControl != 0 {
		names = append(names, "Control")
	}
	if m&ModShift != 0 {
		names = append(names, "Shift")
	}
	if m&ModSuper != 0 {
		names = append(names, "Super")
	}
	return strings.Join(names, "+")
}
