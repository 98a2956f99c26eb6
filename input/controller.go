// Package input turns key presses into game commands.
package input

import (
	"retro-snake/game/types"
)

// Command tells the host what to do after a key was handled
type Command int

const (
	CommandNone Command = iota
	CommandClose
)

// Engine is the part of the game engine the controller drives
type Engine interface {
	State() types.State
	Start()
	QueueDirection(d types.Direction) bool
}

// Controller maps keys to engine calls; it keeps no game state of its own
type Controller struct {
	engine Engine
}

func NewController(engine Engine) *Controller {
	return &Controller{engine: engine}
}

// HandleKey applies k to the engine. Escape never touches the engine, it only
// asks the host to close the game.
func (c *Controller) HandleKey(k Key) Command {
	switch k {
	case KeyEscape:
		return CommandClose
	case KeySpace:
		if s := c.engine.State(); s == types.Menu || s == types.GameOver {
			c.engine.Start()
		}
		return CommandNone
	}

	d := Direction(k)
	if d == types.None || c.engine.State() != types.Playing {
		return CommandNone
	}
	c.engine.QueueDirection(d)
	return CommandNone
}

// Direction returns the travel direction bound to k, None for non-movement keys
func Direction(k Key) types.Direction {
	switch k {
	case KeyArrowUp, KeyW:
		return types.Up
	case KeyArrowDown, KeyS:
		return types.Down
	case KeyArrowLeft, KeyA:
		return types.Left
	case KeyArrowRight, KeyD:
		return types.Right
	default:
		return types.None
	}
}
