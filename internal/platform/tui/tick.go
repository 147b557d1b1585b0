// Package tui provides the Bubble Tea front end for the snake engine.
// It renders store snapshots and forwards key presses; it never changes
// game state itself.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnapshotMsg carries a snapshot published by the store.
type SnapshotMsg snake.Snapshot

// waitForSnapshot returns a command that blocks until the subscription
// delivers the next snapshot. It yields nil once the subscription is closed.
func waitForSnapshot(sub *snake.Subscription) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-sub.Updates()
		if !ok {
			return nil
		}
		return SnapshotMsg(snap)
	}
}
