package game

import (
	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"

	"golang.org/x/exp/rand"
)

// EventKind identifies something notable that happened during a tick
type EventKind int

const (
	EventStarted EventKind = iota
	EventFoodEaten
	EventSpecialFoodSpawned
	EventSpecialFoodEaten
	EventSpecialFoodExpired
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFoodEaten:
		return "food_eaten"
	case EventSpecialFoodSpawned:
		return "special_spawned"
	case EventSpecialFoodEaten:
		return "special_eaten"
	case EventSpecialFoodExpired:
		return "special_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to listeners from inside Start and Tick
type Event struct {
	Kind         EventKind
	Score        int
	Length       int
	Pos          types.Point
	Collision    manager.CollisionType
	NewHighScore bool
}

type Listener func(Event)

// Snapshot is a detached copy of the engine state for renderers
type Snapshot struct {
	State        types.State
	Grid         types.Grid
	Snake        []types.Point
	Food         types.Point
	Special      *entity.SpecialFood
	Direction    types.Direction
	Score        int
	HighScore    int
	NewHighScore bool
	Steps        int
}

// Engine owns the authoritative game state and advances it one tick at a time
type Engine struct {
	grid      types.Grid
	snake     *entity.Snake
	direction types.Direction
	pending   types.Direction
	state     types.State
	score     int
	steps     int
	newHigh   bool

	lastCollision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	listeners []Listener
}

// NewEngine builds an engine in the Menu state.
// The high score is read from store once, here.
func NewEngine(grid types.Grid, store manager.HighScoreStore, src rand.Source) *Engine {
	collisionMgr := manager.NewCollisionManager(grid)
	e := &Engine{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rand.New(src)),
		stateMgr:     manager.NewStateManager(store),
	}
	e.Reset()
	return e
}

// Subscribe registers a listener for engine events
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Reset puts a single-segment snake in the center and returns to the menu
func (e *Engine) Reset() {
	e.snake = entity.NewSnake(e.grid.Center())
	e.direction = types.None
	e.pending = types.None
	e.score = 0
	e.steps = 0
	e.newHigh = false
	e.lastCollision = manager.NoCollision
	e.foodMgr.Reset(e.snake)
	e.state = types.Menu
}

// Start resets the board and begins play
func (e *Engine) Start() {
	e.Reset()
	e.state = types.Playing
	e.emit(Event{Kind: EventStarted, Length: e.snake.Len(), Pos: e.snake.Head()})
}

// QueueDirection stores d as the pending direction when it is perpendicular to the
// current travel, or when travel has not started yet. Anything else is ignored.
func (e *Engine) QueueDirection(d types.Direction) bool {
	if d == types.None {
		return false
	}
	if e.direction != types.None && !d.Perpendicular(e.direction) {
		return false
	}
	e.pending = d
	return true
}

// Tick advances the game by one step. It is a no-op outside Playing.
func (e *Engine) Tick() {
	if e.state != types.Playing {
		return
	}

	if e.pending != types.None {
		e.direction = e.pending
		e.pending = types.None
	}
	// Awaiting first input
	if e.direction == types.None {
		return
	}
	e.steps++

	newHead := e.snake.Head().Add(e.direction.Delta())
	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != manager.NoCollision {
		e.gameOver(collision)
		return
	}

	e.snake.Prepend(newHead)

	switch {
	case newHead == e.foodMgr.Food():
		e.score += types.FoodReward
		spawned := e.foodMgr.ConsumeFood(e.snake)
		e.emit(Event{Kind: EventFoodEaten, Score: e.score, Length: e.snake.Len(), Pos: newHead})
		if spawned {
			e.emit(Event{Kind: EventSpecialFoodSpawned, Score: e.score, Length: e.snake.Len(), Pos: e.foodMgr.Special().Pos})
		}
	case e.foodMgr.ConsumeSpecial(newHead):
		e.score += types.SpecialFoodReward
		e.emit(Event{Kind: EventSpecialFoodEaten, Score: e.score, Length: e.snake.Len(), Pos: newHead})
	default:
		e.snake.RemoveTail()
	}

	if special := e.foodMgr.Special(); special != nil && e.foodMgr.Tick() {
		e.emit(Event{Kind: EventSpecialFoodExpired, Score: e.score, Length: e.snake.Len(), Pos: special.Pos})
	}
}

func (e *Engine) gameOver(collision manager.CollisionType) {
	e.state = types.GameOver
	e.lastCollision = collision
	e.newHigh = e.stateMgr.RecordGameOver(e.score)
	e.emit(Event{
		Kind:         EventGameOver,
		Score:        e.score,
		Length:       e.snake.Len(),
		Pos:          e.snake.Head(),
		Collision:    collision,
		NewHighScore: e.newHigh,
	})
}

func (e *Engine) State() types.State {
	return e.state
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) HighScore() int {
	return e.stateMgr.GetHighScore()
}

func (e *Engine) Direction() types.Direction {
	return e.direction
}

func (e *Engine) Pending() types.Direction {
	return e.pending
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

func (e *Engine) LastCollision() manager.CollisionType {
	return e.lastCollision
}

// Snapshot copies the state so readers cannot reach engine internals
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:        e.state,
		Grid:         e.grid,
		Snake:        e.snake.Segments(),
		Food:         e.foodMgr.Food(),
		Special:      e.foodMgr.Special(),
		Direction:    e.direction,
		Score:        e.score,
		HighScore:    e.stateMgr.GetHighScore(),
		NewHighScore: e.newHigh,
		Steps:        e.steps,
	}
}
