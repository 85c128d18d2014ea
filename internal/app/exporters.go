package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// eventUID derives a stable UID for an event so re-exported calendars update
// entries instead of duplicating them.
func eventUID(year int, ev Event) string {
	name := fmt.Sprintf("meetup/%d/%s", year, ev.Date)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + ICSUIDDomain
}

// eventStart combines an event's stored date and time of day.
func eventStart(ev Event) (time.Time, error) {
	d, err := time.Parse(StoreDateLayout, ev.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, ev.Date)
	}
	t, err := time.Parse(ClockLayout, ev.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, ev.Time)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// GenerateICS writes an iCalendar rendering of the year store.
func GenerateICS(w io.Writer, s *YearStore) error {
	cal := ics.NewCalendar()
	cal.SetProductId(ICSProductID)
	cal.SetMethod(ics.MethodPublish)

	for _, ev := range s.Events {
		start, err := eventStart(ev)
		if err != nil {
			return err
		}
		ve := cal.AddEvent(eventUID(s.Year, ev))
		ve.SetDtStampTime(start)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(MeetupDurationHours * time.Hour))
		ve.SetSummary(ev.Topic)
		ve.SetDescription("Presented by " + strings.Join(ev.Presenters, ", "))
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// GenerateCSV writes a CSV rendering of the year store.
func GenerateCSV(w io.Writer, s *YearStore) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "time", "topic", "presenters"}); err != nil {
		return err
	}
	for _, ev := range s.Events {
		row := []string{ev.Date, ev.Time, ev.Topic, strings.Join(ev.Presenters, ", ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
