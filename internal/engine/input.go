// internal/engine/input.go
package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// trackedKeys is the fixed set the simulation cares about.
var trackedKeys = []ebiten.Key{
	ebiten.KeyArrowRight,
	ebiten.KeyArrowDown,
	ebiten.KeySpace,
}

// KeyState is a per-tick snapshot of the pressed keys. Snapshotting keeps
// the simulation decoupled from live input polling and testable.
type KeyState struct {
	pressed map[ebiten.Key]bool
}

// NewKeyState builds a snapshot with the given keys held down.
func NewKeyState(keys ...ebiten.Key) *KeyState {
	pressed := make(map[ebiten.Key]bool, len(keys))
	for _, key := range keys {
		pressed[key] = true
	}
	return &KeyState{pressed: pressed}
}

// PollKeys snapshots the tracked keys from the live keyboard.
func PollKeys() *KeyState {
	pressed := make(map[ebiten.Key]bool, len(trackedKeys))
	for _, key := range trackedKeys {
		if ebiten.IsKeyPressed(key) {
			pressed[key] = true
		}
	}
	return &KeyState{pressed: pressed}
}

func (k *KeyState) IsPressed(key ebiten.Key) bool {
	return k.pressed[key]
}
