package app

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTopic         = errors.New("topic cannot be empty")
	ErrEmptyPresenterList = errors.New("at least one presenter is required")
	ErrEmptyPresenterName = errors.New("presenter name cannot be empty")
)

// NewEvent builds a validated meetup event from parsed inputs. The time of
// day must already be in canonical form (see ParseTime). Presenter order is
// preserved.
func NewEvent(date time.Time, timeOfDay, topic string, presenters []string) (Event, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Event{}, ErrEmptyTopic
	}
	if len(presenters) == 0 {
		return Event{}, ErrEmptyPresenterList
	}
	trimmed := make([]string, len(presenters))
	for i, p := range presenters {
		p = strings.TrimSpace(p)
		if p == "" {
			return Event{}, fmt.Errorf("%w (presenter %d)", ErrEmptyPresenterName, i+1)
		}
		trimmed[i] = p
	}
	return Event{
		Date:       date.Format(StoreDateLayout),
		Time:       timeOfDay,
		Topic:      topic,
		Presenters: trimmed,
	}, nil
}
