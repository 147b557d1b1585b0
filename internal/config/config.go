// Package config provides YAML-based configuration loading for the game,
// its terminal theme, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig shapes the driver around the engine. The rules themselves
// (grid size, start position) are fixed.
type GameConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	FoodAttempts int           `yaml:"food_attempts"`
}

// ThemeConfig defines how the board is drawn. Glyphs are two terminal
// columns wide: two narrow runes or one wide rune.
type ThemeConfig struct {
	HeadGlyph   string `yaml:"head_glyph"`
	BodyGlyph   string `yaml:"body_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	EmptyGlyph  string `yaml:"empty_glyph"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	FoodColor   string `yaml:"food_color"`
	EmptyColor  string `yaml:"empty_color"`
	BorderColor string `yaml:"border_color"`
	TextColor   string `yaml:"text_color"`
	AlertColor  string `yaml:"alert_color"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GlyphWidth is the number of terminal columns a grid cell occupies.
const GlyphWidth = 2

// Palette is a ThemeConfig with colors resolved.
type Palette struct {
	HeadGlyph, BodyGlyph, FoodGlyph, EmptyGlyph string

	Head, Body, Food, Empty, Border, Text, Alert core.Color
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	p := Palette{
		HeadGlyph:  t.HeadGlyph,
		BodyGlyph:  t.BodyGlyph,
		FoodGlyph:  t.FoodGlyph,
		EmptyGlyph: t.EmptyGlyph,
	}

	colors := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"head_color", t.HeadColor, &p.Head},
		{"body_color", t.BodyColor, &p.Body},
		{"food_color", t.FoodColor, &p.Food},
		{"empty_color", t.EmptyColor, &p.Empty},
		{"border_color", t.BorderColor, &p.Border},
		{"text_color", t.TextColor, &p.Text},
		{"alert_color", t.AlertColor, &p.Alert},
	}
	for _, c := range colors {
		parsed, err := core.ParseColor(c.name)
		if err != nil {
			return p, fmt.Errorf("theme.%s: %w", c.field, err)
		}
		*c.dst = parsed
	}
	return p, nil
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Game.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_interval must be positive, got %s", c.Game.TickInterval))
	}
	if c.Game.FoodAttempts < 0 {
		errs = append(errs, fmt.Errorf("game.food_attempts must not be negative, got %d", c.Game.FoodAttempts))
	}

	glyphs := map[string]string{
		"head_glyph":  c.Theme.HeadGlyph,
		"body_glyph":  c.Theme.BodyGlyph,
		"food_glyph":  c.Theme.FoodGlyph,
		"empty_glyph": c.Theme.EmptyGlyph,
	}
	for _, field := range []string{"head_glyph", "body_glyph", "food_glyph", "empty_glyph"} {
		if w := core.TextWidth(glyphs[field]); w != GlyphWidth {
			errs = append(errs, fmt.Errorf("theme.%s must be %d columns wide, got %d", field, GlyphWidth, w))
		}
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}

	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}
