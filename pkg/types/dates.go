package types

import "time"

// Wire formats for dates and times. Calendar dates are ISO (YYYY-MM-DD),
// timestamps are RFC 3339 instants, and reminder due times are 24-hour
// local clock times (HH:MM).
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// Date formats t as an ISO calendar date.
func Date(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the current local calendar date in ISO form.
func Today() string {
	return Date(time.Now())
}
