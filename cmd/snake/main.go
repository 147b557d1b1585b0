// snake is a single-player snake game for the terminal.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective configuration
//	snake version   - Print the version
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <level> - Override log.level from the config
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	// .env is optional; OTEL_* variables may come from it
	//nolint:errcheck // Not fatal, variables might be set directly
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a single-player game on a 20x20 grid. Steer the snake to
the food, grow, and avoid the walls and your own body.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  version  - Print the version

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return cfg, fmt.Errorf("--log-level: %w", err)
		}
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// startTelemetry sets up tracing. Failure only disables it.
func startTelemetry(ctx context.Context, logger *log.Logger) func() {
	shutdown, err := telemetry.Setup(ctx, version)
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without tracing", "error", err)
		return func() {}
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}
}
