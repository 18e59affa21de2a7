// Reminders repository: dated to-dos with overdue and pending queries
// evaluated against the caller's current date and time.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Reminders accesses the reminders table.
type Reminders struct {
	s *Store
}

// Reminders returns the reminder repository.
func (s *Store) Reminders() *Reminders {
	return &Reminders{s: s}
}

const reminderColumns = "id, title, description, due_date, due_time, completed, category_id, activity_id, created_at"

// All returns every reminder ordered by due date, then due time, then ID
// ascending.
func (r *Reminders) All() ([]types.Reminder, error) {
	return collectRows(r.s,
		"SELECT "+reminderColumns+" FROM reminders ORDER BY due_date ASC, due_time ASC, id ASC",
		hydrateReminder,
	)
}

// Get retrieves a reminder by ID. Returns ErrNotFound if it does not
// exist.
func (r *Reminders) Get(id int64) (types.Reminder, error) {
	if r.s.db == nil {
		return types.Reminder{}, types.ErrNotFound
	}
	row := r.s.db.QueryRow("SELECT "+reminderColumns+" FROM reminders WHERE id = ?", id)
	var rem types.Reminder
	err := row.Scan(&rem.ID, &rem.Title, &rem.Description, &rem.DueDate, &rem.DueTime,
		&rem.Completed, &rem.CategoryID, &rem.ActivityID, &rem.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Reminder{}, types.ErrNotFound
	}
	if err != nil {
		return types.Reminder{}, fmt.Errorf("getting reminder %d: %w", id, err)
	}
	return rem, nil
}

// Create inserts a reminder (not completed) and returns its ID. The
// category and activity links are optional.
func (r *Reminders) Create(title string, description *string, dueDate string, dueTime *string, categoryID, activityID *int64) (int64, error) {
	res, err := r.s.exec(
		"INSERT INTO reminders (title, description, due_date, due_time, completed, category_id, activity_id, created_at) VALUES (?, ?, ?, ?, 0, ?, ?, ?)",
		title, description, dueDate, dueTime, categoryID, activityID, r.s.now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("creating reminder: %w", err)
	}
	return res.LastInsertId()
}

// Update applies the non-nil patch fields. CreatedAt is immutable. A
// patch with no fields set is a no-op.
func (r *Reminders) Update(id int64, patch types.ReminderPatch) error {
	var sets []string
	var args []any
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *patch.DueDate)
	}
	if patch.DueTime != nil {
		sets = append(sets, "due_time = ?")
		args = append(args, *patch.DueTime)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*patch.Completed))
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.ActivityID != nil {
		sets = append(sets, "activity_id = ?")
		args = append(args, *patch.ActivityID)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	if _, err := r.s.exec("UPDATE reminders SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating reminder %d: %w", id, err)
	}
	return nil
}

// MarkCompleted sets the completed flag, leaving every other field
// untouched.
func (r *Reminders) MarkCompleted(id int64) error {
	if _, err := r.s.exec("UPDATE reminders SET completed = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("completing reminder %d: %w", id, err)
	}
	return nil
}

// Remove deletes a reminder.
func (r *Reminders) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM reminders WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting reminder %d: %w", id, err)
	}
	return nil
}

// Pending returns all not-completed reminders in due order.
func (r *Reminders) Pending() ([]types.Reminder, error) {
	return collectRows(r.s,
		"SELECT "+reminderColumns+" FROM reminders WHERE completed = 0 ORDER BY due_date ASC, due_time ASC, id ASC",
		hydrateReminder,
	)
}

// Overdue returns not-completed reminders due before today, or due today
// at a due time earlier than the current clock time. Completed reminders
// are never overdue regardless of date.
func (r *Reminders) Overdue() ([]types.Reminder, error) {
	now := r.s.now()
	today := types.Date(now)
	clock := now.Format(types.ClockFormat)
	return collectRows(r.s,
		"SELECT "+reminderColumns+" FROM reminders WHERE completed = 0 AND (due_date < ? OR (due_date = ? AND due_time IS NOT NULL AND due_time < ?)) ORDER BY due_date ASC, due_time ASC",
		hydrateReminder, today, today, clock,
	)
}

// hydrateReminder converts one row into a types.Reminder.
func hydrateReminder(rows *sql.Rows) (types.Reminder, error) {
	var rem types.Reminder
	err := rows.Scan(&rem.ID, &rem.Title, &rem.Description, &rem.DueDate, &rem.DueTime,
		&rem.Completed, &rem.CategoryID, &rem.ActivityID, &rem.CreatedAt)
	return rem, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
