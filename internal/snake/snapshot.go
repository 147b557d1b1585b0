package snake

import (
	"fmt"
	"strings"
)

// CellKind classifies what occupies a grid cell, for rendering.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindHead
	KindBody
	KindFood
)

// Snapshot is an immutable copy of the game state handed to observers.
type Snapshot struct {
	Seq       uint64 // Number of state changes since the store was created
	Snake     []Cell // Head at index 0
	Food      Cell
	Direction Direction
	Score     int
	GameOver  bool
}

func newSnapshot(seq uint64, s State) Snapshot {
	body := make([]Cell, len(s.Snake))
	copy(body, s.Snake)
	return Snapshot{
		Seq:       seq,
		Snake:     body,
		Food:      s.Food,
		Direction: s.Direction,
		Score:     s.Score,
		GameOver:  s.GameOver,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return noFood
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// Phase returns the lifecycle phase captured by the snapshot.
func (s Snapshot) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhaseRunning
}

// KindAt reports what occupies c. The head wins over the body, the snake
// wins over food.
func (s Snapshot) KindAt(c Cell) CellKind {
	for i, seg := range s.Snake {
		if seg == c {
			if i == 0 {
				return KindHead
			}
			return KindBody
		}
	}
	if s.Food == c {
		return KindFood
	}
	return KindEmpty
}

// String draws the grid as text: 'O' head, 'o' body, '*' food, '.' empty.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "score=%d len=%d dir=%s phase=%s\n", s.Score, s.Len(), s.Direction, s.Phase())
	for y := range GridSize {
		for x := range GridSize {
			switch s.KindAt(Cell{X: x, Y: y}) {
			case KindHead:
				b.WriteByte('O')
			case KindBody:
				b.WriteByte('o')
			case KindFood:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
