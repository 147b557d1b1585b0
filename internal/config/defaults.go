package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickInterval: 150 * time.Millisecond,
			FoodAttempts: 1024,
		},
		Theme: ThemeConfig{
			HeadGlyph:   "██",
			BodyGlyph:   "██",
			FoodGlyph:   "██",
			EmptyGlyph:  " ·",
			HeadColor:   "green",
			BodyColor:   "bright_green",
			FoodColor:   "red",
			EmptyColor:  "gray",
			BorderColor: "gray",
			TextColor:   "bright_white",
			AlertColor:  "bright_red",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKeyPath: "~/.snake/host_key",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}
