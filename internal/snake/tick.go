package snake

// Tick advances the game by one step and returns the new state.
// A finished game is returned unchanged. food is consulted only when the
// snake eats.
func Tick(s State, food FoodSource) State {
	if s.GameOver || len(s.Snake) == 0 {
		return s
	}

	newHead := s.Head().Step(s.Direction)

	// Walls and the whole pre-move body, tail included, are fatal
	if !newHead.InBounds() || s.Occupies(newHead) {
		s.GameOver = true
		return s
	}

	next := make([]Cell, 0, len(s.Snake)+1)
	next = append(next, newHead)
	next = append(next, s.Snake...)

	if newHead == s.Food {
		s.Snake = next
		s.Score++
		if cell, ok := food.Next(next); ok {
			s.Food = cell
		} else {
			// Board is full, nowhere left to go
			s.Food = noFood
			s.GameOver = true
		}
		return s
	}

	s.Snake = next[:len(next)-1]
	return s
}
