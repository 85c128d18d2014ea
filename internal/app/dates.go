package app

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

var timePattern = regexp.MustCompile(`^(\d{1,2}):([0-5][0-9])\s*([AaPp][Mm])$`)

// ParseDate parses a strict yyyy-mm-dd calendar date. Out-of-range values
// (month 13, Feb 30) are rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(StoreDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected yyyy-mm-dd)", ErrInvalidDateFormat, s)
	}
	return d, nil
}

// ParseTime parses a clock time like "6:30pm" or "10:00AM" and returns the
// canonical lower-case form without a leading zero, e.g. "6:30pm".
func ParseTime(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q (expected something like 6:30pm or 10:00am)", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: %q (hour must be 1-12)", ErrInvalidTimeFormat, s)
	}
	return fmt.Sprintf("%d:%s%s", hour, m[2], strings.ToLower(m[3])), nil
}

// FirstFridayOfMonth returns the first Friday of the given month.
func FirstFridayOfMonth(year int, month time.Month) time.Time {
	// Noon anchoring avoids timezone drift when formatting to yyyy-mm-dd
	d := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	daysUntilFriday := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, daysUntilFriday)
}

// NextFirstFriday returns the closest first-Friday-of-a-month strictly after
// today. When today is the current month's first Friday, or past it, the
// result rolls over to the next month.
func NextFirstFriday(today time.Time) time.Time {
	ff := FirstFridayOfMonth(today.Year(), today.Month())
	if ff.Format(StoreDateLayout) > today.Format(StoreDateLayout) {
		return ff
	}
	next := time.Date(today.Year(), today.Month(), 1, 12, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return FirstFridayOfMonth(next.Year(), next.Month())
}
