package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

// Session is one running game: a store and the loop that drives it.
type Session struct {
	Store *snake.Store
	loop  *snake.Loop
}

// NewSession creates a game seeded from rt. The loop starts with Run.
func NewSession(rt core.RuntimeConfig, foodAttempts int, logger *log.Logger) *Session {
	store := snake.NewStore(
		snake.NewRandomFood(rt.ResolveSeed(), foodAttempts),
		snake.WithLogger(logger),
	)
	return &Session{
		Store: store,
		loop:  snake.NewLoop(store, snake.NewTicker(rt.TickInterval), logger),
	}
}

// Run ticks the game until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	return s.loop.Run(ctx)
}

// Play runs a session in the local terminal until the user quits or ctx
// is canceled.
func Play(ctx context.Context, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickInterval <= 0 {
		rt.TickInterval = cfg.Game.TickInterval
	}
	rt.Seed = rt.ResolveSeed()

	ctx, span := telemetry.Tracer("tui").Start(ctx, "play", trace.WithAttributes(
		attribute.Int64("seed", rt.Seed),
		attribute.String("tick_interval", rt.TickInterval.String()),
	))
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game := NewSession(rt, cfg.Game.FoodAttempts, logger)
	sub := game.Store.Subscribe(0)
	defer sub.Close()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		game.Run(ctx) //nolint:errcheck // returns ctx.Err()
	}()

	model := NewModel(game.Store, sub, palette, rt).
		WithSpan(span).
		WithScreenshotDir(config.UserPath("screenshots"))

	logger.Info("session started", "seed", rt.Seed, "tick", rt.TickInterval)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()

	cancel()
	<-loopDone

	final := game.Store.Snapshot()
	span.SetAttributes(attribute.Int("final_score", final.Score))
	logger.Info("session ended", "score", final.Score, "len", final.Len())

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
