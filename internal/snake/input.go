package snake

// ApplyInput applies a raw key press to the state. Unknown keys, reversals
// and input after game over leave the state unchanged.
func ApplyInput(s State, key Key) State {
	if s.GameOver {
		return s
	}

	dir, ok := key.Direction()
	if !ok {
		return s
	}

	// Prevent instant reversal into the neck
	if dir == s.Direction.Opposite() {
		return s
	}

	s.Direction = dir
	return s
}
