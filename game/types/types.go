package types

import "time"

// Grid represents the square board, Size cells per side
type Grid struct {
	Size int
}

// Contains reports whether p lies inside [0,Size) x [0,Size)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Center returns the starting cell of a new snake
func (g Grid) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Size * g.Size
}

type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Game constants
const (
	DefaultGridSize     = 20
	DefaultSurfaceSize  = 400
	DefaultTickInterval = 150 * time.Millisecond

	FoodReward        = 10
	SpecialFoodReward = 50

	SpawnAttempts       = 50  // Resample budget before accepting an occupied cell
	SpecialFoodLifetime = 150 // Ticks before an uneaten special food expires
	SpecialFoodEvery    = 4   // Guaranteed special spawn every N regular foods
	SpecialFoodChance   = 0.2 // Independent chance per eligible regular food
)
