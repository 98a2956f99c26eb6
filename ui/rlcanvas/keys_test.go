package rlcanvas

import (
	"testing"

	"retro-snake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMapKey(t *testing.T) {
	tests := map[int32]input.Key{
		rl.KeyUp:     input.KeyArrowUp,
		rl.KeyRight:  input.KeyArrowRight,
		rl.KeyA:      input.KeyA,
		rl.KeySpace:  input.KeySpace,
		rl.KeyEscape: input.KeyEscape,
		rl.KeyQ:      input.KeyUnknown,
		rl.KeyEnter:  input.KeyUnknown,
	}
	for code, want := range tests {
		if got := MapKey(code); got != want {
			t.Errorf("MapKey(%d): expected %v, got %v", code, want, got)
		}
	}
}
