package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the head of snake onto pos.
// Every current segment counts, the tail included.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if pos is free of the snake and of every blocked cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, blocked ...types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake.Contains(pos) {
		return false
	}
	for _, b := range blocked {
		if pos == b {
			return false
		}
	}
	return true
}
