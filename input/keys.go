package input

// Key is a key identifier the game reacts to. Hosts translate their native key
// events into these values; anything else maps to KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEscape
)

var keyNames = map[string]Key{
	"ArrowUp":    KeyArrowUp,
	"ArrowDown":  KeyArrowDown,
	"ArrowLeft":  KeyArrowLeft,
	"ArrowRight": KeyArrowRight,
	"KeyW":       KeyW,
	"KeyA":       KeyA,
	"KeyS":       KeyS,
	"KeyD":       KeyD,
	"Space":      KeySpace,
	"Escape":     KeyEscape,
}

// ParseKey maps a textual key code ("ArrowUp", "KeyW", "Space", "Escape") to a Key
func ParseKey(code string) Key {
	if k, ok := keyNames[code]; ok {
		return k
	}
	return KeyUnknown
}

// KeyFromRune maps the letter keys, case-insensitively
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case ' ':
		return KeySpace
	default:
		return KeyUnknown
	}
}

func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "Unknown"
}
