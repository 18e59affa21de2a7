// Time entries repository: timed sessions with start/stop semantics and
// manual after-the-fact entries.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// TimeEntries accesses the time_entries table.
type TimeEntries struct {
	s *Store
}

// TimeEntries returns the time entry repository.
func (s *Store) TimeEntries() *TimeEntries {
	return &TimeEntries{s: s}
}

const timeEntryColumns = "id, activity_id, start_time, end_time, duration_minutes, note, date"

// Start opens a new entry for the activity with end_time unset and
// returns its ID. The entry stays active until Stop.
func (r *TimeEntries) Start(activityID int64, note *string) (int64, error) {
	now := r.s.now()
	res, err := r.s.exec(
		"INSERT INTO time_entries (activity_id, start_time, note, date) VALUES (?, ?, ?, ?)",
		activityID, now.Format(time.RFC3339), note, types.Date(now),
	)
	if err != nil {
		return 0, fmt.Errorf("starting time entry: %w", err)
	}
	return res.LastInsertId()
}

// Stop closes an active entry: end_time is stamped with the current
// instant and duration_minutes with the elapsed wall-clock time rounded
// to whole minutes. Stopping a missing or already-stopped entry is the
// documented "nothing happened" outcome: stopped is false and the stored
// duration is left untouched, with no error.
func (r *TimeEntries) Stop(id int64, note *string) (stopped bool, err error) {
	entry, err := r.Get(id)
	if errors.Is(err, types.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !entry.Active() {
		return false, nil
	}

	start, err := time.Parse(time.RFC3339, entry.StartTime)
	if err != nil {
		return false, fmt.Errorf("parsing start time of entry %d: %w", id, err)
	}
	now := r.s.now()
	duration := int64(math.Round(now.Sub(start).Minutes()))

	_, err = r.s.exec(
		"UPDATE time_entries SET end_time = ?, duration_minutes = ?, note = ? WHERE id = ?",
		now.Format(time.RFC3339), duration, note, id,
	)
	if err != nil {
		return false, fmt.Errorf("stopping time entry %d: %w", id, err)
	}
	return true, nil
}

// Add inserts an already-closed entry of the given length, synthesizing
// start_time = now - minutes. An empty date defaults to today.
func (r *TimeEntries) Add(activityID, minutes int64, note *string, date string) (int64, error) {
	now := r.s.now()
	if date == "" {
		date = types.Date(now)
	}
	start := now.Add(-time.Duration(minutes) * time.Minute)
	res, err := r.s.exec(
		"INSERT INTO time_entries (activity_id, start_time, end_time, duration_minutes, note, date) VALUES (?, ?, ?, ?, ?, ?)",
		activityID, start.Format(time.RFC3339), now.Format(time.RFC3339), minutes, note, date,
	)
	if err != nil {
		return 0, fmt.Errorf("adding time entry: %w", err)
	}
	return res.LastInsertId()
}

// Get retrieves an entry by ID. Returns ErrNotFound if it does not exist.
func (r *TimeEntries) Get(id int64) (types.TimeEntry, error) {
	if r.s.db == nil {
		return types.TimeEntry{}, types.ErrNotFound
	}
	var e types.TimeEntry
	err := r.s.db.QueryRow(
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE id = ?", id,
	).Scan(&e.ID, &e.ActivityID, &e.StartTime, &e.EndTime, &e.DurationMinutes, &e.Note, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return types.TimeEntry{}, types.ErrNotFound
	}
	if err != nil {
		return types.TimeEntry{}, fmt.Errorf("getting time entry %d: %w", id, err)
	}
	return e, nil
}

// Active returns all running entries (end_time unset), oldest start
// first.
func (r *TimeEntries) Active() ([]types.TimeEntry, error) {
	return collectRows(r.s,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE end_time IS NULL ORDER BY start_time ASC",
		hydrateTimeEntry,
	)
}

// Recent returns the most recently started entries, newest first, ties
// broken by descending ID.
func (r *TimeEntries) Recent(limit int) ([]types.TimeEntry, error) {
	return collectRows(r.s,
		"SELECT "+timeEntryColumns+" FROM time_entries ORDER BY start_time DESC, id DESC LIMIT ?",
		hydrateTimeEntry, limit,
	)
}

// ForRange returns entries whose date falls inside [start, end], both
// inclusive, newest start first.
func (r *TimeEntries) ForRange(start, end string) ([]types.TimeEntry, error) {
	return collectRows(r.s,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE date BETWEEN ? AND ? ORDER BY start_time DESC",
		hydrateTimeEntry, start, end,
	)
}

// ByActivitySince returns one activity's entries dated on or after
// start, oldest start first.
func (r *TimeEntries) ByActivitySince(activityID int64, start string) ([]types.TimeEntry, error) {
	return collectRows(r.s,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE activity_id = ? AND date >= ? ORDER BY start_time ASC",
		hydrateTimeEntry, activityID, start,
	)
}

// Update applies the non-nil patch fields. A patch with no fields set is
// a no-op.
func (r *TimeEntries) Update(id int64, patch types.TimeEntryPatch) error {
	var sets []string
	var args []any
	if patch.ActivityID != nil {
		sets = append(sets, "activity_id = ?")
		args = append(args, *patch.ActivityID)
	}
	if patch.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *patch.StartTime)
	}
	if patch.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *patch.EndTime)
	}
	if patch.DurationMinutes != nil {
		sets = append(sets, "duration_minutes = ?")
		args = append(args, *patch.DurationMinutes)
	}
	if patch.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, *patch.Note)
	}
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	if _, err := r.s.exec("UPDATE time_entries SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating time entry %d: %w", id, err)
	}
	return nil
}

// Remove deletes an entry.
func (r *TimeEntries) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM time_entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting time entry %d: %w", id, err)
	}
	return nil
}

// hydrateTimeEntry converts one row into a types.TimeEntry.
func hydrateTimeEntry(rows *sql.Rows) (types.TimeEntry, error) {
	var e types.TimeEntry
	err := rows.Scan(&e.ID, &e.ActivityID, &e.StartTime, &e.EndTime, &e.DurationMinutes, &e.Note, &e.Date)
	return e, err
}
