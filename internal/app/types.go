package app

// Event represents a single meetup entry
type Event struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Topic      string   `json:"topic"`
	Presenters []string `json:"presenters"`
}

// YearStore represents all meetup events recorded for one calendar year
type YearStore struct {
	Year   int     `json:"year"`
	Events []Event `json:"events"`
}
