package input

import (
	"testing"

	"retro-snake/game/types"
)

type fakeEngine struct {
	state  types.State
	starts int
	queued []types.Direction
}

func (f *fakeEngine) State() types.State { return f.state }

func (f *fakeEngine) Start() {
	f.starts++
	f.state = types.Playing
}

func (f *fakeEngine) QueueDirection(d types.Direction) bool {
	f.queued = append(f.queued, d)
	return true
}

func TestMovementKeysWhilePlaying(t *testing.T) {
	tests := []struct {
		key  Key
		want types.Direction
	}{
		{KeyArrowUp, types.Up},
		{KeyW, types.Up},
		{KeyArrowDown, types.Down},
		{KeyS, types.Down},
		{KeyArrowLeft, types.Left},
		{KeyA, types.Left},
		{KeyArrowRight, types.Right},
		{KeyD, types.Right},
	}

	for _, tt := range tests {
		f := &fakeEngine{state: types.Playing}
		c := NewController(f)

		if cmd := c.HandleKey(tt.key); cmd != CommandNone {
			t.Errorf("%v: expected no command, got %v", tt.key, cmd)
		}
		if len(f.queued) != 1 || f.queued[0] != tt.want {
			t.Errorf("%v: expected %v queued, got %v", tt.key, tt.want, f.queued)
		}
	}
}

func TestMovementIgnoredOutsidePlaying(t *testing.T) {
	for _, state := range []types.State{types.Menu, types.GameOver} {
		f := &fakeEngine{state: state}
		NewController(f).HandleKey(KeyArrowUp)

		if len(f.queued) != 0 {
			t.Errorf("%v: expected no direction queued, got %v", state, f.queued)
		}
	}
}

func TestSpaceStartsFromMenuAndGameOver(t *testing.T) {
	tests := []struct {
		state      types.State
		wantStarts int
	}{
		{types.Menu, 1},
		{types.GameOver, 1},
		{types.Playing, 0},
	}

	for _, tt := range tests {
		f := &fakeEngine{state: tt.state}
		NewController(f).HandleKey(KeySpace)

		if f.starts != tt.wantStarts {
			t.Errorf("%v: expected %d starts, got %d", tt.state, tt.wantStarts, f.starts)
		}
	}
}

func TestEscapeRequestsCloseOnly(t *testing.T) {
	f := &fakeEngine{state: types.Playing}
	cmd := NewController(f).HandleKey(KeyEscape)

	if cmd != CommandClose {
		t.Errorf("Expected CommandClose, got %v", cmd)
	}
	if f.starts != 0 || len(f.queued) != 0 || f.state != types.Playing {
		t.Errorf("Expected engine untouched, got %+v", f)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	f := &fakeEngine{state: types.Playing}
	if cmd := NewController(f).HandleKey(KeyUnknown); cmd != CommandNone {
		t.Errorf("Expected no command, got %v", cmd)
	}
	if len(f.queued) != 0 || f.starts != 0 {
		t.Errorf("Expected engine untouched, got %+v", f)
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"ArrowUp":  KeyArrowUp,
		"KeyD":     KeyD,
		"Space":    KeySpace,
		"Escape":   KeyEscape,
		"KeyQ":     KeyUnknown,
		"":         KeyUnknown,
		"arrowup":  KeyUnknown,
		"Backspac": KeyUnknown,
	}
	for code, want := range tests {
		if got := ParseKey(code); got != want {
			t.Errorf("ParseKey(%q): expected %v, got %v", code, want, got)
		}
	}
}

func TestKeyFromRune(t *testing.T) {
	if KeyFromRune('W') != KeyW || KeyFromRune('d') != KeyD || KeyFromRune(' ') != KeySpace {
		t.Error("Expected letter keys to map case-insensitively")
	}
	if KeyFromRune('q') != KeyUnknown {
		t.Error("Expected unbound rune to be unknown")
	}
}
