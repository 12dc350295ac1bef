package model

import "time"

// DateKeyLayout is the layout used to key annotations by calendar day
const DateKeyLayout = "2006-01-02"

// Holiday is a named public holiday on a single day
type Holiday struct {
	Date  time.Time
	Name  string
	Color string // "#rrggbb", empty for the default holiday color
}

// Key returns the calendar-day key of the holiday
func (h Holiday) Key() string {
	return h.Date.Format(DateKeyLayout)
}

// Event is a calendar event spanning one or more days
type Event struct {
	StartDate time.Time
	EndDate   *time.Time // nil for single-day events; inclusive otherwise
	Name      string
	Color     string
}

// Covers reports whether the event touches the given calendar day
func (e Event) Covers(day time.Time) bool {
	d := dateOnly(day)
	start := dateOnly(e.StartDate)
	if d.Before(start) {
		return false
	}
	if e.EndDate == nil {
		return d.Equal(start)
	}
	return !d.After(dateOnly(*e.EndDate))
}
