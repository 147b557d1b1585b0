package core

import (
	"strings"
)

// Glyph is a single screen cell: a rune and its foreground color.
// A wide rune fills two cells; the second holds Rune 0.
type Glyph struct {
	Rune  rune
	Color Color
}

var blank = Glyph{Rune: ' ', Color: ColorDefault}

// Screen is a 2D glyph buffer. Views draw into it with plain rune
// operations and the platform turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Glyph
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Glyph, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Glyph, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
		// A wide glyph cut in half at the new edge is dropped
		if copyW > 0 && copyW < oldW && oldCells[y][copyW].Rune == 0 {
			s.cells[y][copyW-1] = blank
		}
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position. A wide rune
// also takes the cell to its right; if that cell is off screen a space is
// drawn instead. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	if RuneWidth(r) < 2 {
		s.put(x, y, Glyph{Rune: r, Color: c})
		return
	}
	if !s.inside(x+1, y) {
		s.put(x, y, Glyph{Rune: ' ', Color: c})
		return
	}
	s.put(x, y, Glyph{Rune: r, Color: c})
	s.put(x+1, y, Glyph{Rune: 0, Color: c})
}

// put stores g at (x, y). Overwriting either half of a wide glyph clears
// the other half.
func (s *Screen) put(x, y int, g Glyph) {
	row := s.cells[y]
	if row[x].Rune == 0 && x > 0 {
		row[x-1] = blank
	} else if x+1 < s.width && row[x+1].Rune == 0 {
		row[x+1] = blank
	}
	row[x] = g
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetGlyph(x, y).Rune
}

// GetGlyph returns the glyph at the given position, or a blank glyph when
// out of bounds.
func (s *Screen) GetGlyph(x, y int) Glyph {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y][x]
}

func (s *Screen) inside(x, y int) bool {
	return NewRect(0, 0, s.width, s.height).Contains(x, y)
}

// DrawText writes a string horizontally starting at (x, y), clipped at the
// screen edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string starting at (x, y). Wide runes
// advance two columns; zero-width runes are skipped.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetColored(x, y, r, c)
		x += w
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// String converts the buffer to plain text, rows joined by newlines.
// Colors are dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of row y as a string, one terminal column per cell.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, 0, s.width)
	for _, g := range s.cells[y] {
		if g.Rune == 0 {
			continue
		}
		runes = append(runes, g.Rune)
	}
	return string(runes)
}
