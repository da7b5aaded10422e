package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var idStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

// ColorEnabled reports whether ANSI styling should be written to f.
func ColorEnabled(f *os.File) bool {
	if f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or 0 when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// HighlightID returns an event id, bold when color is enabled.
func HighlightID(id int, color bool) string {
	text := strconv.Itoa(id)
	if !color {
		return text
	}
	return idStyle.Render(text)
}
