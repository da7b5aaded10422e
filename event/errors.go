package event

import (
	"errors"
	"strings"
)

var (
	// ErrEventNotFound is returned when no event has the given id.
	ErrEventNotFound = errors.New("event not found")

	// ErrSubjectNotFound is returned when listing a subject with no events.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrEmptyTitle is returned when an event title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrUnsupportedVersion is returned when the events file was written by a newer judo.
	ErrUnsupportedVersion = errors.New("unsupported events file version")
)

// ValidateTitle checks if the title is usable.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
