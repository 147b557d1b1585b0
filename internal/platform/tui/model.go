package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model for one game session. It observes the
// store through a subscription and forwards input to it.
type Model struct {
	store   *snake.Store
	sub     *snake.Subscription
	snap    snake.Snapshot
	palette config.Palette
	screen  *core.Screen
	hint    *core.Screen // Sized to the window, used when the board does not fit
	keys    KeyMap
	help    help.Model
	span    trace.Span
	shotDir string // Empty disables screenshots
	width   int
	height  int

	quitting bool
}

// NewModel creates a model rendering store. sub must belong to store; the
// caller closes it after the program exits.
func NewModel(store *snake.Store, sub *snake.Subscription, palette config.Palette, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		store:   store,
		sub:     sub,
		snap:    store.Snapshot(),
		palette: palette,
		screen:  core.NewScreen(boardWidth, boardHeight),
		hint:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		help:    h,
		span:    trace.SpanFromContext(context.Background()),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// WithSpan returns a copy of m that records session events on span.
func (m Model) WithSpan(span trace.Span) Model {
	if span != nil {
		m.span = span
	}
	return m
}

// WithScreenshotDir returns a copy of m that saves screenshots into dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.sub)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.hint.Resize(msg.Width, msg.Height)
		return m, nil

	case SnapshotMsg:
		return m.handleSnapshot(snake.Snapshot(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.snap.GameOver {
			m.span.AddEvent("reset", trace.WithAttributes(attribute.Int("previous_score", m.snap.Score)))
			m.store.Reset()
		}
		return m, nil
	}

	if k, ok := m.keys.DirectionKey(msg); ok {
		m.store.ApplyInput(k)
	}
	return m, nil
}

// handleSnapshot stores the latest snapshot and waits for the next one.
func (m Model) handleSnapshot(snap snake.Snapshot) (tea.Model, tea.Cmd) {
	// Older snapshots can still be queued behind a newer one
	if snap.Seq < m.snap.Seq {
		return m, waitForSnapshot(m.sub)
	}

	if snap.GameOver && !m.snap.GameOver {
		m.span.AddEvent("game_over", trace.WithAttributes(
			attribute.Int("score", snap.Score),
			attribute.Int("length", snap.Len()),
		))
	}
	m.snap = snap
	return m, waitForSnapshot(m.sub)
}

// Snapshot returns the snapshot the model currently displays.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	DrawBoard(m.screen, m.snap, m.palette)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(m.shotDir, filename), []byte(m.screen.String()), 0o600)
}

// helpView renders the help bar. Full help collapses to the short form
// when the window cannot fit it below the board.
func (m Model) helpView() string {
	view := m.help.View(m.keys)
	if m.help.ShowAll && m.height > 0 && boardHeight+lipgloss.Height(view) > m.height {
		short := m.help
		short.ShowAll = false
		view = short.View(m.keys)
	}
	return view
}

// tooSmall reports whether the known window cannot fit the board and help.
func (m Model) tooSmall(helpHeight int) bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	return m.width < boardWidth || m.height < boardHeight+helpHeight
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.helpView()
	if m.tooSmall(lipgloss.Height(helpView)) {
		drawTooSmall(m.hint, m.palette)
		return RenderScreen(m.hint)
	}

	DrawBoard(m.screen, m.snap, m.palette)
	view := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(helpView),
	)

	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}
