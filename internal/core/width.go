package core

import "github.com/mattn/go-runewidth"

// cellWidth measures terminal columns. Ambiguous-width runes such as
// box drawing and block elements count as one column regardless of locale,
// matching how lipgloss measures rendered lines.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	return cellWidth.RuneWidth(r)
}

// TextWidth returns the number of terminal columns s occupies.
func TextWidth(s string) int {
	return cellWidth.StringWidth(s)
}
