// Journal repository: dated free-form entries with tag encoding and
// text search.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Journal accesses the journal table.
type Journal struct {
	s *Store
}

// Journal returns the journal repository.
func (s *Store) Journal() *Journal {
	return &Journal{s: s}
}

const journalColumns = "id, text, date, tags"

// Add inserts an entry. Tags are stored as a JSON array string; an empty
// date defaults to today.
func (r *Journal) Add(text string, tags []string, date string) (int64, error) {
	if date == "" {
		date = r.s.today()
	}
	res, err := r.s.exec(
		"INSERT INTO journal (text, tags, date) VALUES (?, ?, ?)",
		text, types.EncodeTags(tags), date,
	)
	if err != nil {
		return 0, fmt.Errorf("adding journal entry: %w", err)
	}
	return res.LastInsertId()
}

// Get retrieves an entry by ID. Returns ErrNotFound if it does not exist.
func (r *Journal) Get(id int64) (types.Journal, error) {
	if r.s.db == nil {
		return types.Journal{}, types.ErrNotFound
	}
	var j types.Journal
	err := r.s.db.QueryRow(
		"SELECT "+journalColumns+" FROM journal WHERE id = ?", id,
	).Scan(&j.ID, &j.Text, &j.Date, &j.Tags)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Journal{}, types.ErrNotFound
	}
	if err != nil {
		return types.Journal{}, fmt.Errorf("getting journal entry %d: %w", id, err)
	}
	return j, nil
}

// Recent returns the most recent entries, newest first, ties broken by
// descending ID.
func (r *Journal) Recent(limit int) ([]types.Journal, error) {
	return collectRows(r.s,
		"SELECT "+journalColumns+" FROM journal ORDER BY date DESC, id DESC LIMIT ?",
		hydrateJournal, limit,
	)
}

// Search returns entries whose text contains query, newest first.
func (r *Journal) Search(query string) ([]types.Journal, error) {
	return collectRows(r.s,
		"SELECT "+journalColumns+" FROM journal WHERE text LIKE ? ORDER BY date DESC",
		hydrateJournal, "%"+query+"%",
	)
}

// Update applies the non-nil patch fields. A patch with no fields set is
// a no-op.
func (r *Journal) Update(id int64, patch types.JournalPatch) error {
	var sets []string
	var args []any
	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, *patch.Tags)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	if _, err := r.s.exec("UPDATE journal SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating journal entry %d: %w", id, err)
	}
	return nil
}

// Remove deletes an entry.
func (r *Journal) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM journal WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting journal entry %d: %w", id, err)
	}
	return nil
}

// hydrateJournal converts one row into a types.Journal.
func hydrateJournal(rows *sql.Rows) (types.Journal, error) {
	var j types.Journal
	err := rows.Scan(&j.ID, &j.Text, &j.Date, &j.Tags)
	return j, err
}
