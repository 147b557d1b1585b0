package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout: one HUD row, then the grid inside a one-cell border.
const (
	hudHeight   = 1
	boardWidth  = snake.GridSize*config.GlyphWidth + 2
	boardHeight = hudHeight + snake.GridSize + 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				// Second half of a wide rune
				if g.Rune != 0 {
					run.WriteRune(g.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawBoard draws the HUD, the grid and any overlay for snap into dst.
// dst should be boardWidth x boardHeight.
func DrawBoard(dst *core.Screen, snap snake.Snapshot, p config.Palette) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", snap.Score, snap.Len())
	dst.DrawTextColored(0, 0, hud, p.Text)

	frame := core.NewRect(0, hudHeight, boardWidth, snake.GridSize+2)
	dst.DrawBox(frame, p.Border)

	for y := range snake.GridSize {
		for x := range snake.GridSize {
			glyph, color := p.EmptyGlyph, p.Empty
			switch snap.KindAt(snake.Cell{X: x, Y: y}) {
			case snake.KindHead:
				glyph, color = p.HeadGlyph, p.Head
			case snake.KindBody:
				glyph, color = p.BodyGlyph, p.Body
			case snake.KindFood:
				glyph, color = p.FoodGlyph, p.Food
			}
			dst.DrawTextColored(frame.X+1+x*config.GlyphWidth, frame.Y+1+y, glyph, color)
		}
	}

	if snap.GameOver {
		title := "Game Over!"
		if snap.Len() == snake.GridSize*snake.GridSize {
			title = "You Win!"
		}
		drawOverlay(dst, frame, p, title, fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	}
}

// drawOverlay draws a centered message box inside area.
func drawOverlay(dst *core.Screen, area core.Rect, p config.Palette, title string, lines ...string) {
	maxLen := len([]rune(title))
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}

	box := area.Centered(maxLen+4, len(lines)+4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, p.Border)

	dst.DrawTextCentered(box.Y+1, title, p.Alert)
	dst.DrawHLine(box.X+1, box.Y+2, box.W-2, '─', p.Border)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, p.Text)
	}
}

// drawTooSmall fills dst with a resize hint.
func drawTooSmall(dst *core.Screen, p config.Palette) {
	dst.Clear()
	_, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	top := core.Clamp(cy-1, 0, core.Max(dst.Height()-2, 0))
	dst.DrawTextCentered(top, "Window too small", p.Alert)
	dst.DrawTextCentered(top+1, fmt.Sprintf("Need %dx%d", boardWidth, boardHeight+1), p.Text)
}
