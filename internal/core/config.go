package core

import "time"

// RuntimeConfig is what a view needs to start a session: the screen size
// and the settings that shape the driver around the engine.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between engine ticks
	Seed         int64         // RNG seed for food placement, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 150 * time.Millisecond,
	}
}

// ResolveSeed returns Seed, or a time based seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
