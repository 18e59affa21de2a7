package types

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Reminder is a dated (optionally timed) to-do with optional links to a
// category and an activity. Deleting a linked category or activity nulls
// the reference.
type Reminder struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Completed   bool    `json:"completed"`
	CategoryID  *int64  `json:"category_id"`
	ActivityID  *int64  `json:"activity_id"`
	CreatedAt   string  `json:"created_at"`
}

// ReminderPatch lists the reminder fields that may be updated
// independently. CreatedAt is immutable.
type ReminderPatch struct {
	Title       *string
	Description *sql.NullString
	DueDate     *string
	DueTime     *sql.NullString
	Completed   *bool
	CategoryID  *sql.NullInt64
	ActivityID  *sql.NullInt64
}

// OverdueAt reports whether the reminder is overdue at the given instant:
// not completed, and either due before today or due today with a due time
// earlier than the current clock time.
func (r Reminder) OverdueAt(now time.Time) bool {
	if r.Completed {
		return false
	}
	today := Date(now)
	if r.DueDate < today {
		return true
	}
	return r.DueDate == today && r.DueTime != nil && *r.DueTime < now.Format(ClockFormat)
}

// reminderJSON mirrors Reminder on the wire. The backup document encodes
// completed as 0/1, matching the stored column.
type reminderJSON struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	DueDate     string          `json:"due_date"`
	DueTime     *string         `json:"due_time"`
	Completed   json.RawMessage `json:"completed"`
	CategoryID  *int64          `json:"category_id"`
	ActivityID  *int64          `json:"activity_id"`
	CreatedAt   string          `json:"created_at"`
}

// MarshalJSON encodes Completed as 0 or 1.
func (r Reminder) MarshalJSON() ([]byte, error) {
	completed := json.RawMessage("0")
	if r.Completed {
		completed = json.RawMessage("1")
	}
	return json.Marshal(reminderJSON{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Completed:   completed,
		CategoryID:  r.CategoryID,
		ActivityID:  r.ActivityID,
		CreatedAt:   r.CreatedAt,
	})
}

// UnmarshalJSON accepts completed as a number (0/1) or a bool, so
// documents produced by older exports still import.
func (r *Reminder) UnmarshalJSON(data []byte) error {
	var raw reminderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = raw.ID
	r.Title = raw.Title
	r.Description = raw.Description
	r.DueDate = raw.DueDate
	r.DueTime = raw.DueTime
	r.CategoryID = raw.CategoryID
	r.ActivityID = raw.ActivityID
	r.CreatedAt = raw.CreatedAt

	r.Completed = false
	if len(raw.Completed) > 0 {
		var n float64
		if err := json.Unmarshal(raw.Completed, &n); err == nil {
			r.Completed = n != 0
			return nil
		}
		var b bool
		if err := json.Unmarshal(raw.Completed, &b); err == nil {
			r.Completed = b
		}
	}
	return nil
}
