// Package event implements judo's event store.
//
// A Store holds every tracked event keyed by a small integer id. Ids are
// always the smallest positive integer not in use, so they stay short and
// are reused after removal or pruning. The whole store is persisted as a
// single JSON snapshot by File.
//
// The public API mirrors the CLI commands:
//   - Create, Remove, Update, MarkDone, MarkUndone for the event lifecycle
//   - Prune for discarding old completed events
//   - List for the subject-grouped overview
package event

import "time"

// Event is a single tracked task or reminder.
type Event struct {
	// ID is the small, reusable identifier shown to the user.
	ID int `json:"id" yaml:"id"`

	// UID is a stable random identifier that survives id reuse.
	UID string `json:"uid,omitempty" yaml:"uid,omitempty"`

	// Title is the short summary of the event.
	Title string `json:"title" yaml:"title"`

	// Subject is the lowercase topic the event is grouped under.
	Subject string `json:"subject" yaml:"subject"`

	// TimeSpec describes when the event is due. It is never parsed.
	TimeSpec string `json:"time,omitempty" yaml:"time,omitempty"`

	// CreatedAt is when the event was added.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// DoneAt is when the event was completed (nil while pending).
	DoneAt *time.Time `json:"done_at,omitempty" yaml:"done_at,omitempty"`
}

// Done reports whether the event has been completed.
func (e Event) Done() bool {
	return e.DoneAt != nil
}

// DefaultSubject is used when no default subject is configured.
const DefaultSubject = "other"

// DefaultDoneTimeout is how long completed events are kept before pruning.
const DefaultDoneTimeout = 7 * 24 * time.Hour
