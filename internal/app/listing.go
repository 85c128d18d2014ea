package app

import (
	"strings"
	"time"
)

// RenderListing renders the human-readable listing for a year store: one
// block per event, in store order, separated by blank lines. The output is a
// pure function of the store contents.
func RenderListing(s *YearStore) string {
	var b strings.Builder
	for i, ev := range s.Events {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Date: " + FormatLongDate(ev.Date) + "\n")
		b.WriteString("Time: " + ev.Time + "\n")
		b.WriteString("Topic: " + ev.Topic + "\n")
		b.WriteString("Presenters: " + strings.Join(ev.Presenters, ", ") + "\n")
	}
	return b.String()
}

// FormatLongDate renders a stored yyyy-mm-dd date as e.g. "March 06, 2026".
func FormatLongDate(date string) string {
	d, err := time.Parse(StoreDateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(LongDateLayout)
}
