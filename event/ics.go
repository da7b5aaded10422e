package event

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"
)

const icsTimestampFormat = "20060102T150405Z"

// ProductID identifies judo in exported calendars.
const ProductID = "-//amonks//judo//EN"

// WriteICS writes events as an iCalendar document of VTODO components.
// Time specs are carried verbatim in an X-JUDO-TIME property because they
// are not parsed into dates.
func WriteICS(w io.Writer, events []Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)

	for _, evt := range events {
		uid := evt.UID
		if uid == "" {
			uid = fmt.Sprintf("judo-%d", evt.ID)
		}
		todo := cal.AddTodo(uid)
		todo.SetDtStampTime(now)
		if !evt.CreatedAt.IsZero() {
			todo.SetCreatedTime(evt.CreatedAt)
		}
		todo.SetSummary(evt.Title)
		todo.SetProperty(ical.ComponentPropertyCategories, evt.Subject)
		todo.SetProperty(ical.ComponentProperty("X-JUDO-ID"), strconv.Itoa(evt.ID))
		if evt.TimeSpec != "" {
			todo.SetProperty(ical.ComponentProperty("X-JUDO-TIME"), evt.TimeSpec)
		}
		if evt.DoneAt != nil {
			todo.SetStatus(ical.ObjectStatusCompleted)
			todo.SetProperty(ical.ComponentPropertyCompleted, evt.DoneAt.UTC().Format(icsTimestampFormat))
		} else {
			todo.SetStatus(ical.ObjectStatusNeedsAction)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}
