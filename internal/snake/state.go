package snake

// Phase is the coarse lifecycle state of a game.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// Starting values used by Reset.
var (
	initialHead = Cell{X: 10, Y: 10}
	initialFood = Cell{X: 15, Y: 15}
)

// noFood marks the food as absent. Only set when the board has no free cell.
var noFood = Cell{X: -1, Y: -1}

// State is the complete game state. Transition functions never mutate the
// State they are given; the Snake slice is shared between values and must be
// treated as read-only.
type State struct {
	Snake     []Cell // Head at index 0
	Food      Cell
	Direction Direction
	GameOver  bool
	Score     int
}

// Reset returns a fresh game state.
func Reset() State {
	return State{
		Snake:     []Cell{initialHead},
		Food:      initialFood,
		Direction: DirRight,
	}
}

// Head returns the first snake segment.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment lies on c.
func (s State) Occupies(c Cell) bool {
	return occupied(s.Snake, c)
}

// Phase returns the lifecycle phase of the state.
func (s State) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhaseRunning
}

func occupied(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}
