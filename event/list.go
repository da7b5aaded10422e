package event

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// ListOptions configures a subject-grouped listing.
type ListOptions struct {
	// All includes completed events and subjects outside the allow-list.
	All bool

	// Subject restricts the listing to a single subject.
	Subject string

	// AllowList is the set of subjects shown in the default overview.
	AllowList []string
}

// Group is a subject header and the entries rendered beneath it.
type Group struct {
	Subject string
	Entries []Event
}

// Listing is the result of List: groups in render order.
type Listing struct {
	Groups []Group

	// SubjectWidth is the length in runes of the longest subject in the store.
	SubjectWidth int

	// Filtered is true when the listing was restricted to one subject.
	Filtered bool
}

// GroupBySubject partitions events by subject. Each group is ordered by id.
func GroupBySubject(events []Event) map[string][]Event {
	groups := make(map[string][]Event)
	for _, evt := range events {
		groups[evt.Subject] = append(groups[evt.Subject], evt)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
	}
	return groups
}

// Subjects returns the sorted subjects that have at least one event.
func (s *Store) Subjects() []string {
	groups := GroupBySubject(s.Events())
	subjects := make([]string, 0, len(groups))
	for subject := range groups {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// List groups the store's events by subject and applies the listing filters.
//
// Without a subject filter, subjects are visited in lexicographic order and a
// subject outside the allow-list is skipped unless All is set. A subject only
// appears when at least one of its events is renderable. With a subject
// filter, that subject always appears, and ErrSubjectNotFound is returned when
// it has no events at all.
func (s *Store) List(opts ListOptions) (Listing, error) {
	groups := GroupBySubject(s.Events())

	listing := Listing{}
	for subject := range groups {
		if width := utf8.RuneCountInString(subject); width > listing.SubjectWidth {
			listing.SubjectWidth = width
		}
	}

	if opts.Subject != "" {
		subject := normalizeSubject(opts.Subject)
		events, ok := groups[subject]
		if !ok {
			return Listing{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject)
		}
		listing.Filtered = true
		listing.Groups = []Group{{Subject: subject, Entries: renderable(events, opts.All)}}
		return listing, nil
	}

	allowed := make(map[string]struct{}, len(opts.AllowList))
	for _, subject := range NormalizeSubjects(opts.AllowList) {
		allowed[subject] = struct{}{}
	}

	subjects := make([]string, 0, len(groups))
	for subject := range groups {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	for _, subject := range subjects {
		if _, ok := allowed[subject]; !ok && !opts.All {
			continue
		}
		entries := renderable(groups[subject], opts.All)
		if len(entries) == 0 {
			continue
		}
		listing.Groups = append(listing.Groups, Group{Subject: subject, Entries: entries})
	}

	return listing, nil
}

func renderable(events []Event, all bool) []Event {
	entries := make([]Event, 0, len(events))
	for _, evt := range events {
		if evt.Done() && !all {
			continue
		}
		entries = append(entries, evt)
	}
	return entries
}
