package rlcanvas

import (
	"retro-snake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type binding struct {
	code int32
	key  input.Key
}

var bindings = []binding{
	{rl.KeyUp, input.KeyArrowUp},
	{rl.KeyDown, input.KeyArrowDown},
	{rl.KeyLeft, input.KeyArrowLeft},
	{rl.KeyRight, input.KeyArrowRight},
	{rl.KeyW, input.KeyW},
	{rl.KeyA, input.KeyA},
	{rl.KeyS, input.KeyS},
	{rl.KeyD, input.KeyD},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEscape, input.KeyEscape},
}

// MapKey translates a raylib key code
func MapKey(code int32) input.Key {
	for _, b := range bindings {
		if b.code == code {
			return b.key
		}
	}
	return input.KeyUnknown
}

// PressedKeys returns the game keys pressed since the previous frame
func PressedKeys() []input.Key {
	var keys []input.Key
	for _, b := range bindings {
		if rl.IsKeyPressed(b.code) {
			keys = append(keys, b.key)
		}
	}
	return keys
}
