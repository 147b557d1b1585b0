// Package snake implements the game engine: pure transition functions over
// State plus a Store that serializes them and publishes snapshots.
// It has no terminal or Bubble Tea dependencies.
package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GridSize is the width and height of the square playing field.
const GridSize = 20

// TickInterval is the default cadence at which a driver advances the game.
const TickInterval = 150 * time.Millisecond

// grid is the playing field as a rectangle, used for bounds checks.
var grid = core.NewRect(0, 0, GridSize, GridSize)

// Cell is an integer coordinate on the grid.
type Cell struct {
	X, Y int
}

// InBounds reports whether the cell lies on the grid.
func (c Cell) InBounds() bool {
	return grid.Contains(c.X, c.Y)
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Key is a raw directional key identifier as delivered by a keyboard source.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Direction maps the key to a direction. ok is false for unrecognized keys.
func (k Key) Direction() (d Direction, ok bool) {
	switch k {
	case KeyArrowUp:
		return DirUp, true
	case KeyArrowDown:
		return DirDown, true
	case KeyArrowLeft:
		return DirLeft, true
	case KeyArrowRight:
		return DirRight, true
	}
	return 0, false
}
