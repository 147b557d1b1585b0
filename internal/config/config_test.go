package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config differs from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "game:\n  tick_interval: 80ms\ntheme:\n  food_color: yellow\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.TickInterval != 80*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 80ms", cfg.Game.TickInterval)
	}
	if cfg.Theme.FoodColor != "yellow" {
		t.Errorf("FoodColor = %q, expected yellow", cfg.Theme.FoodColor)
	}
	// Unset keys keep their defaults
	if cfg.Game.FoodAttempts != 1024 {
		t.Errorf("FoodAttempts = %d, expected 1024", cfg.Game.FoodAttempts)
	}
	if cfg.Server.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Server.Address)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != Default() {
		t.Error("expected defaults alongside a parse error")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := "game:\n  tick_interval: 0s\ntheme:\n  head_glyph: \"#\"\n  head_color: ultraviolet\nlog:\n  level: loud\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"tick_interval", "head_glyph", "head_color", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("server:\n  address: \":2300\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Address != ":2300" {
		t.Errorf("Address = %q, expected local config :2300", cfg.Server.Address)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, userDirName)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("server:\n  address: \":2400\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Address != ":2400" {
		t.Errorf("Address = %q, expected user config :2400", cfg.Server.Address)
	}
}

func TestValidateGlyphWidth(t *testing.T) {
	tests := []struct {
		name  string
		glyph string
		ok    bool
	}{
		{"two narrow runes", "##", true},
		{"one wide rune", "🍎", true},
		{"block elements", "██", true},
		{"one narrow rune", "#", false},
		{"two wide runes", "🍎🍎", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Theme.FoodGlyph = tc.glyph

			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() error for %q: %v", tc.glyph, err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("Validate() accepted %q", tc.glyph)
				}
				if !strings.Contains(err.Error(), "food_glyph") {
					t.Errorf("error %q does not name food_glyph", err)
				}
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := Default().Theme.Palette()
	if err != nil {
		t.Fatalf("Palette() error: %v", err)
	}
	if p.Head != core.ColorGreen || p.Food != core.ColorRed || p.Alert != core.ColorBrightRed {
		t.Errorf("unexpected palette %+v", p)
	}
	if p.EmptyGlyph != " ·" {
		t.Errorf("EmptyGlyph = %q", p.EmptyGlyph)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/var/lib/snake.log", "/var/lib/snake.log"},
		{"relative/key", "relative/key"},
		{"~/.snake/host_key", filepath.Join(home, ".snake", "host_key")},
	}
	for _, tc := range tests {
		got, err := ExpandPath(tc.in)
		if err != nil {
			t.Errorf("ExpandPath(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExpandPath(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
