// Logs repository: daily category ratings with range and recency queries.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Logs accesses the logs table.
type Logs struct {
	s *Store
}

// Logs returns the log repository.
func (s *Store) Logs() *Logs {
	return &Logs{s: s}
}

const logColumns = "id, category_id, rating, note, date"

// Add inserts a rating log. An empty date defaults to today. The 1-10
// rating range is the caller's responsibility; the only storage-level
// failure is a missing category, which propagates as a constraint
// violation.
func (r *Logs) Add(categoryID int64, rating int, note *string, date string) (int64, error) {
	if date == "" {
		date = r.s.today()
	}
	res, err := r.s.exec(
		"INSERT INTO logs (category_id, rating, note, date) VALUES (?, ?, ?, ?)",
		categoryID, rating, note, date,
	)
	if err != nil {
		return 0, fmt.Errorf("adding log: %w", err)
	}
	return res.LastInsertId()
}

// Get retrieves a log by ID. Returns ErrNotFound if it does not exist.
func (r *Logs) Get(id int64) (types.Log, error) {
	if r.s.db == nil {
		return types.Log{}, types.ErrNotFound
	}
	var l types.Log
	err := r.s.db.QueryRow(
		"SELECT "+logColumns+" FROM logs WHERE id = ?", id,
	).Scan(&l.ID, &l.CategoryID, &l.Rating, &l.Note, &l.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Log{}, types.ErrNotFound
	}
	if err != nil {
		return types.Log{}, fmt.Errorf("getting log %d: %w", id, err)
	}
	return l, nil
}

// ForRange returns logs whose date falls inside [start, end], both
// inclusive, newest first.
func (r *Logs) ForRange(start, end string) ([]types.Log, error) {
	return collectRows(r.s,
		"SELECT "+logColumns+" FROM logs WHERE date BETWEEN ? AND ? ORDER BY date DESC",
		hydrateLog, start, end,
	)
}

// Recent returns the most recent logs, newest first, ties broken by
// descending ID.
func (r *Logs) Recent(limit int) ([]types.Log, error) {
	return collectRows(r.s,
		"SELECT "+logColumns+" FROM logs ORDER BY date DESC, id DESC LIMIT ?",
		hydrateLog, limit,
	)
}

// ByCategorySince returns one category's logs on or after start, oldest
// first.
func (r *Logs) ByCategorySince(categoryID int64, start string) ([]types.Log, error) {
	return collectRows(r.s,
		"SELECT "+logColumns+" FROM logs WHERE category_id = ? AND date >= ? ORDER BY date ASC",
		hydrateLog, categoryID, start,
	)
}

// Update applies the non-nil patch fields. A patch with no fields set is
// a no-op.
func (r *Logs) Update(id int64, patch types.LogPatch) error {
	var sets []string
	var args []any
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *patch.Rating)
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
	if _, err := r.s.exec("UPDATE logs SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating log %d: %w", id, err)
	}
	return nil
}

// Remove deletes a log.
func (r *Logs) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM logs WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting log %d: %w", id, err)
	}
	return nil
}

// hydrateLog converts one row into a types.Log.
func hydrateLog(rows *sql.Rows) (types.Log, error) {
	var l types.Log
	err := rows.Scan(&l.ID, &l.CategoryID, &l.Rating, &l.Note, &l.Date)
	return l, err
}
