package types

import "database/sql"

// TimeEntry is one timed session against an activity. An entry is active
// while EndTime is unset; DurationMinutes is computed when the timer
// stops, as the elapsed wall-clock time rounded to whole minutes.
type TimeEntry struct {
	ID              int64   `json:"id"`
	ActivityID      int64   `json:"activity_id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes *int64  `json:"duration_minutes"`
	Note            *string `json:"note"`
	Date            string  `json:"date"`
}

// Active reports whether the entry's timer is still running.
func (e TimeEntry) Active() bool {
	return e.EndTime == nil
}

// TimeEntryPatch lists the time entry fields that may be updated
// independently.
type TimeEntryPatch struct {
	ActivityID      *int64
	StartTime       *string
	EndTime         *sql.NullString
	DurationMinutes *sql.NullInt64
	Note            *sql.NullString
	Date            *string
}
