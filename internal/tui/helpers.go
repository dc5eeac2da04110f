package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Width returns the rendered width of a string, ignoring ANSI escape codes.
func Width(s string) int { return lipgloss.Width(s) }

// Truncate shortens a string to fit within w cells, appending an ellipsis if
// anything was cut.
func Truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
