package event

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// StoreOptions configures an in-memory store.
type StoreOptions struct {
	// DefaultSubject is used for events created without a subject.
	// Defaults to DefaultSubject.
	DefaultSubject string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Store is the in-memory collection of events keyed by id.
type Store struct {
	events         map[int]*Event
	defaultSubject string
	now            func() time.Time
}

// NewStore returns an empty store.
func NewStore(opts StoreOptions) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		events:         make(map[int]*Event),
		defaultSubject: NormalizeSubject(opts.DefaultSubject, DefaultSubject),
		now:            now,
	}
}

// DefaultSubject returns the subject given to events created without one.
func (s *Store) DefaultSubject() string {
	return s.defaultSubject
}

// Len returns the number of events in the store.
func (s *Store) Len() int {
	return len(s.events)
}

// Get returns a copy of the event with the given id.
func (s *Store) Get(id int) (Event, bool) {
	evt, ok := s.events[id]
	if !ok {
		return Event{}, false
	}
	return cloneEvent(evt), true
}

// Events returns copies of all events ordered by id.
func (s *Store) Events() []Event {
	ids := s.IDs()
	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, cloneEvent(s.events[id]))
	}
	return events
}

// IDs returns all event ids in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NextID returns the smallest positive id not currently in use.
func (s *Store) NextID() int {
	id := 1
	for {
		if _, ok := s.events[id]; !ok {
			return id
		}
		id++
	}
}

// CreateOptions configures a new event.
type CreateOptions struct {
	// Subject is the event's topic. Defaults to the store's default subject.
	Subject string

	// TimeSpec describes when the event is due.
	TimeSpec string
}

// Create adds a new pending event with a freshly assigned id.
func (s *Store) Create(title string, opts CreateOptions) Event {
	evt := &Event{
		ID:        s.NextID(),
		UID:       uuid.NewString(),
		Title:     title,
		Subject:   NormalizeSubject(opts.Subject, s.defaultSubject),
		TimeSpec:  opts.TimeSpec,
		CreatedAt: s.now(),
	}
	s.events[evt.ID] = evt
	return cloneEvent(evt)
}

// Remove deletes the event with the given id and returns it.
func (s *Store) Remove(id int) (Event, error) {
	evt, ok := s.events[id]
	if !ok {
		return Event{}, notFound(id)
	}
	delete(s.events, id)
	return cloneEvent(evt), nil
}

// UpdateOptions configures which fields of an event to overwrite.
// Nil fields are left unchanged.
type UpdateOptions struct {
	Title    *string
	Subject  *string
	TimeSpec *string
}

// Update overwrites the supplied fields of the event with the given id.
func (s *Store) Update(id int, opts UpdateOptions) (Event, error) {
	evt, ok := s.events[id]
	if !ok {
		return Event{}, notFound(id)
	}
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return Event{}, err
		}
	}

	if opts.Title != nil {
		evt.Title = *opts.Title
	}
	if opts.Subject != nil {
		evt.Subject = NormalizeSubject(*opts.Subject, s.defaultSubject)
	}
	if opts.TimeSpec != nil {
		evt.TimeSpec = *opts.TimeSpec
	}
	return cloneEvent(evt), nil
}

// MarkDone completes the event with the given id. The returned bool is false
// when the event was already done, in which case nothing changes.
func (s *Store) MarkDone(id int) (Event, bool, error) {
	evt, ok := s.events[id]
	if !ok {
		return Event{}, false, notFound(id)
	}
	if evt.DoneAt != nil {
		return cloneEvent(evt), false, nil
	}
	now := s.now()
	evt.DoneAt = &now
	return cloneEvent(evt), true, nil
}

// MarkUndone reopens the event with the given id. The returned bool is false
// when the event was not done, in which case nothing changes.
func (s *Store) MarkUndone(id int) (Event, bool, error) {
	evt, ok := s.events[id]
	if !ok {
		return Event{}, false, notFound(id)
	}
	if evt.DoneAt == nil {
		return cloneEvent(evt), false, nil
	}
	evt.DoneAt = nil
	return cloneEvent(evt), true, nil
}

// Prune removes every event completed more than timeout before now and
// returns the removed events ordered by id.
func (s *Store) Prune(now time.Time, timeout time.Duration) []Event {
	var pruned []Event
	for _, id := range s.IDs() {
		evt := s.events[id]
		if evt.DoneAt == nil {
			continue
		}
		if now.Sub(*evt.DoneAt) > timeout {
			pruned = append(pruned, cloneEvent(evt))
			delete(s.events, id)
		}
	}
	return pruned
}

// insert places evt in the store under its own id, replacing any existing entry.
func (s *Store) insert(evt Event) {
	stored := cloneEvent(&evt)
	s.events[evt.ID] = &stored
}

func notFound(id int) error {
	return fmt.Errorf("%w: no event with id %d", ErrEventNotFound, id)
}

func cloneEvent(evt *Event) Event {
	out := *evt
	if evt.DoneAt != nil {
		doneAt := *evt.DoneAt
		out.DoneAt = &doneAt
	}
	return out
}
