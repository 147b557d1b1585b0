package snake

import "math/rand"

// DefaultFoodAttempts bounds rejection sampling before falling back to a
// scan of the free cells.
const DefaultFoodAttempts = 1024

// FoodSource produces a food cell that is not occupied by body.
// ok is false when the grid has no free cell left.
type FoodSource interface {
	Next(body []Cell) (cell Cell, ok bool)
}

// FoodFunc adapts a plain function to FoodSource.
type FoodFunc func(body []Cell) (Cell, bool)

// Next calls f.
func (f FoodFunc) Next(body []Cell) (Cell, bool) {
	return f(body)
}

// RandomFood places food uniformly at random on a free cell.
// It is not safe for concurrent use; Store serializes calls.
type RandomFood struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewRandomFood creates a generator seeded with seed.
// maxAttempts <= 0 selects DefaultFoodAttempts.
func NewRandomFood(seed int64, maxAttempts int) *RandomFood {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}
	return &RandomFood{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// Next samples random cells until one is free. After maxAttempts misses it
// picks among the remaining free cells directly, which keeps the choice
// uniform and terminates on a nearly full grid.
func (f *RandomFood) Next(body []Cell) (Cell, bool) {
	for range f.maxAttempts {
		c := Cell{X: f.rng.Intn(GridSize), Y: f.rng.Intn(GridSize)}
		if !occupied(body, c) {
			return c, true
		}
	}

	taken := make(map[Cell]bool, len(body))
	for _, seg := range body {
		taken[seg] = true
	}

	var free []Cell
	for y := range GridSize {
		for x := range GridSize {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return noFood, false
	}
	return free[f.rng.Intn(len(free))], true
}
