package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amonks/judo/event"
	internalage "github.com/amonks/judo/internal/age"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// headerPadding is the number of '=' characters after the longest subject.
const headerPadding = 5

// ListingOptions configures RenderListing.
type ListingOptions struct {
	// Color enables ANSI styling.
	Color bool

	// Width wraps long entries to this many columns. Zero disables wrapping.
	Width int

	// Now is used to render completion ages.
	Now time.Time
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
)

// RenderListing renders grouped events as subject headers followed by
// pending (" - ") and done (" x ") entries.
func RenderListing(listing event.Listing, opts ListingOptions) string {
	var builder strings.Builder
	for _, group := range listing.Groups {
		builder.WriteString(style(headerStyle, opts.Color, formatHeader(group.Subject, listing)))
		builder.WriteByte('\n')
		for _, evt := range group.Entries {
			for _, line := range formatEntry(evt, opts) {
				builder.WriteString(line)
				builder.WriteByte('\n')
			}
		}
	}
	return builder.String()
}

func formatHeader(subject string, listing event.Listing) string {
	pad := headerPadding
	if !listing.Filtered {
		pad = listing.SubjectWidth + headerPadding - utf8.RuneCountInString(subject)
	}
	if pad < 1 {
		pad = 1
	}
	return strings.ToUpper(subject) + " " + strings.Repeat("=", pad)
}

func formatEntry(evt event.Event, opts ListingOptions) []string {
	marker := "-"
	if evt.Done() {
		marker = "x"
	}
	prefix := fmt.Sprintf(" %s %d: ", marker, evt.ID)

	text := evt.Title
	if evt.TimeSpec != "" {
		text += " @" + evt.TimeSpec
	}
	if elapsed, ok := internalage.DoneAge(evt.DoneAt, opts.Now); ok {
		text += " (done " + FormatDurationShort(elapsed) + " ago)"
	}

	lines := wrapEntry(prefix, text, opts.Width)
	for i, line := range lines {
		if evt.Done() {
			lines[i] = style(doneStyle, opts.Color, line)
		} else if i == 0 && opts.Color {
			lines[i] = " " + marker + " " + HighlightID(evt.ID, true) + ": " + strings.TrimPrefix(line, prefix)
		}
	}
	return lines
}

// wrapEntry word-wraps text so that prefix+text fits in width columns,
// indenting continuation lines under the start of the text.
func wrapEntry(prefix, text string, width int) []string {
	hang := utf8.RuneCountInString(prefix)
	if width <= 0 || width-hang < 10 {
		return []string{prefix + text}
	}

	wrapped := wordwrap.String(text, width-hang)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if i == 0 {
			lines[i] = prefix + line
			continue
		}
		lines[i] = indent.String(line, uint(hang))
	}
	return lines
}

func style(s lipgloss.Style, color bool, text string) string {
	if !color {
		return text
	}
	return s.Render(text)
}
