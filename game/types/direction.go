package types

// Direction represents a cardinal direction of travel
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement vector
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction; None stays None
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Horizontal reports whether d moves along the x axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d moves along the y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Perpendicular reports whether d and other lie on different axes.
// None is perpendicular to nothing.
func (d Direction) Perpendicular(other Direction) bool {
	return (d.Horizontal() && other.Vertical()) || (d.Vertical() && other.Horizontal())
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// State is the phase of a game
type State int

const (
	Menu State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
