package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

var (
	ErrCorruptStore  = errors.New("corrupt store file")
	ErrDuplicateDate = errors.New("an event already exists on that date")
	ErrYearMismatch  = errors.New("event date does not belong to the store year")
)

// LoadOrCreateStore loads the year's store file if it exists, otherwise
// returns an empty store for that year. On-disk creation is deferred to
// Persist so a failed validation never leaves a half-written year behind.
func LoadOrCreateStore(year int) (*YearStore, error) {
	data, err := os.ReadFile(StorePath(year))
	if err != nil {
		if os.IsNotExist(err) {
			return &YearStore{Year: year}, nil
		}
		return nil, err
	}

	var store YearStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, StorePath(year), err)
	}
	if store.Year != year {
		return nil, fmt.Errorf("%w: %s: file year %d does not match %d", ErrCorruptStore, StorePath(year), store.Year, year)
	}
	for _, ev := range store.Events {
		d, err := time.Parse(StoreDateLayout, ev.Date)
		if err != nil || d.Year() != year {
			return nil, fmt.Errorf("%w: %s: event date %q does not belong to %d", ErrCorruptStore, StorePath(year), ev.Date, year)
		}
	}
	return &store, nil
}

// Insert adds an event keeping ascending date order. Dates are unique within
// a year; a collision leaves the store unchanged.
func (s *YearStore) Insert(ev Event) error {
	d, err := time.Parse(StoreDateLayout, ev.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, ev.Date)
	}
	if d.Year() != s.Year {
		return fmt.Errorf("%w: %s is not in %d", ErrYearMismatch, ev.Date, s.Year)
	}

	i := sort.Search(len(s.Events), func(i int) bool { return s.Events[i].Date >= ev.Date })
	if i < len(s.Events) && s.Events[i].Date == ev.Date {
		return fmt.Errorf("%w: %s", ErrDuplicateDate, ev.Date)
	}

	s.Events = append(s.Events, Event{})
	copy(s.Events[i+1:], s.Events[i:])
	s.Events[i] = ev
	return nil
}

// Persist writes the structured file and regenerates the listing from the
// full record set. The JSON write goes through a temp file and rename, and
// the serialization is deterministic: the same store content always produces
// identical bytes.
func (s *YearStore) Persist() error {
	if err := os.MkdirAll(YearDir(s.Year), DirPermissions); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmpFile := StorePath(s.Year) + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, StorePath(s.Year)); err != nil {
		return err
	}

	// The listing is a derived view, regenerated in full
	return os.WriteFile(ListingPath(s.Year), []byte(RenderListing(s)), FilePermissions)
}
