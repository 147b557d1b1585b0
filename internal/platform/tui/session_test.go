package tui

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSessionRunsUntilCanceled(t *testing.T) {
	rt := core.RuntimeConfig{TickInterval: time.Millisecond, Seed: 7}
	game := NewSession(rt, 0, nil)

	sub := game.Store.Subscribe(64)
	defer sub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- game.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-sub.Updates():
			if snap.Seq < 3 {
				continue
			}
		case <-deadline:
			t.Fatal("session did not tick")
		}
		break
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
