package termcanvas

import (
	"retro-snake/input"

	"github.com/gdamore/tcell/v2"
)

// MapKey translates a tcell key event
func MapKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune())
	default:
		return input.KeyUnknown
	}
}
