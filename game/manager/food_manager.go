package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the regular food, the optional special food and the spawn policy
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager

	food    types.Point
	special *entity.SpecialFood
	eaten   int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Reset clears the special food and the eaten counter and places fresh food
func (fm *FoodManager) Reset(snake *entity.Snake) {
	fm.eaten = 0
	fm.special = nil
	fm.food = fm.GenerateFood(snake)
}

func (fm *FoodManager) Food() types.Point {
	return fm.food
}

// Special returns a copy of the special food, nil when none is on the board
func (fm *FoodManager) Special() *entity.SpecialFood {
	if fm.special == nil {
		return nil
	}
	sf := *fm.special
	return &sf
}

func (fm *FoodManager) Eaten() int {
	return fm.eaten
}

// PlaceFood forces the regular food onto pos
func (fm *FoodManager) PlaceFood(pos types.Point) {
	fm.food = pos
}

// PlaceSpecial forces a special food onto pos with the given lifetime
func (fm *FoodManager) PlaceSpecial(pos types.Point, timer int) {
	fm.special = &entity.SpecialFood{Pos: pos, Timer: timer}
}

// GenerateFood picks a cell off the snake and off the special food.
// After SpawnAttempts rejected samples the last candidate is accepted as is.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	var blocked []types.Point
	if fm.special != nil {
		blocked = append(blocked, fm.special.Pos)
	}
	return fm.sample(snake, blocked...)
}

// GenerateSpecialFood picks a cell off the snake and off the regular food
func (fm *FoodManager) GenerateSpecialFood(snake *entity.Snake) *entity.SpecialFood {
	return &entity.SpecialFood{
		Pos:   fm.sample(snake, fm.food),
		Timer: types.SpecialFoodLifetime,
	}
}

func (fm *FoodManager) sample(snake *entity.Snake, blocked ...types.Point) types.Point {
	var candidate types.Point
	for attempt := 0; attempt < types.SpawnAttempts; attempt++ {
		candidate = types.Point{
			X: fm.rng.Intn(fm.grid.Size),
			Y: fm.rng.Intn(fm.grid.Size),
		}
		if fm.collisionMgr.ValidateSpawnPosition(candidate, snake, blocked...) {
			return candidate
		}
	}
	return candidate
}

// ConsumeFood handles the head landing on the regular food.
// Returns true when a special food was spawned as a consequence.
func (fm *FoodManager) ConsumeFood(snake *entity.Snake) bool {
	fm.eaten++
	fm.food = fm.GenerateFood(snake)

	if fm.special != nil || !fm.shouldSpawnSpecial() {
		return false
	}
	fm.special = fm.GenerateSpecialFood(snake)
	return true
}

// ConsumeSpecial reports whether pos holds the special food and removes it if so
func (fm *FoodManager) ConsumeSpecial(pos types.Point) bool {
	if fm.special == nil || fm.special.Pos != pos {
		return false
	}
	fm.special = nil
	return true
}

func (fm *FoodManager) shouldSpawnSpecial() bool {
	if fm.eaten > 0 && fm.eaten%types.SpecialFoodEvery == 0 {
		return true
	}
	return fm.rng.Float64() < types.SpecialFoodChance
}

// Tick counts down the special food lifetime.
// Returns true when the special food expired on this tick.
func (fm *FoodManager) Tick() bool {
	if fm.special == nil {
		return false
	}
	fm.special.Timer--
	if fm.special.Timer <= 0 {
		fm.special = nil
		return true
	}
	return false
}
