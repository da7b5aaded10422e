package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/judo/event"
	internalstrings "github.com/amonks/judo/internal/strings"
)

// EventData represents the data used to render the TOML template.
type EventData struct {
	// ID is the event id, shown in a comment.
	ID int
	// Title is the event title.
	Title string
	// Subject is the event subject.
	Subject string
	// Time is the free-text due time.
	Time string
	// Done is the completion state.
	Done bool
}

// DataFromEvent creates EventData from an existing event for editing.
func DataFromEvent(evt event.Event) EventData {
	return EventData{
		ID:      evt.ID,
		Title:   evt.Title,
		Subject: evt.Subject,
		Time:    evt.TimeSpec,
		Done:    evt.Done(),
	}
}

var eventTemplate = template.Must(template.New("event").Parse(`# event {{ .ID }}
title = {{ printf "%q" .Title }}
subject = {{ printf "%q" .Subject }}
time = {{ printf "%q" .Time }} # free text, leave empty for none
done = {{ .Done }}
`))

// RenderEventTOML renders the event data as a TOML string for editing.
func RenderEventTOML(data EventData) (string, error) {
	var buf bytes.Buffer
	if err := eventTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedEvent represents the parsed result from the TOML editor output.
type ParsedEvent struct {
	Title   string `toml:"title"`
	Subject string `toml:"subject"`
	Time    string `toml:"time"`
	Done    *bool  `toml:"done"`
}

// ParseEventTOML parses the TOML content from the editor.
func ParseEventTOML(content string) (*ParsedEvent, error) {
	var parsed ParsedEvent
	if _, err := toml.Decode(content, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Title = internalstrings.NormalizeWhitespace(parsed.Title)
	parsed.Subject = strings.TrimSpace(parsed.Subject)
	parsed.Time = internalstrings.NormalizeWhitespace(parsed.Time)

	if err := event.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// EditEvent opens the editor for an event and returns the parsed result.
func EditEvent(evt event.Event) (*ParsedEvent, error) {
	content, err := RenderEventTOML(DataFromEvent(evt))
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "judo-event-*.toml")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseEventTOML(string(edited))
}

// ToUpdateOptions converts a ParsedEvent to event.UpdateOptions.
// An empty subject falls back to the store's default subject.
func (p *ParsedEvent) ToUpdateOptions() event.UpdateOptions {
	return event.UpdateOptions{
		Title:    &p.Title,
		Subject:  &p.Subject,
		TimeSpec: &p.Time,
	}
}
