package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagTick time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl  - Steer
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot to ~/.snake/screenshots
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Logs go to log.file (default ~/.snake/snake.log) since the terminal
belongs to the game.

Examples:
  snake play
  snake play --seed 42
  snake play --tick 100ms`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval, overrides game.tick_interval")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tick") {
		if flagTick <= 0 {
			return fmt.Errorf("--tick must be positive, got %s", flagTick)
		}
		cfg.Game.TickInterval = flagTick
	}

	logFile, err := openLogFile(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.Log, "snake")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	defer startTelemetry(ctx, logger)()

	// Get terminal size early so the first frame fits
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickInterval = cfg.Game.TickInterval
	rt.Seed = flagSeed

	return tui.Play(ctx, cfg, rt, logger)
}
