// Activities repository: the things time entries are booked against.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Activities accesses the activities table.
type Activities struct {
	s *Store
}

// Activities returns the activity repository.
func (s *Store) Activities() *Activities {
	return &Activities{s: s}
}

const activityColumns = "id, name, category_id, description"

// All returns every activity ordered by name ascending.
func (r *Activities) All() ([]types.Activity, error) {
	return collectRows(r.s,
		"SELECT "+activityColumns+" FROM activities ORDER BY name",
		hydrateActivity,
	)
}

// Get retrieves an activity by ID. Returns ErrNotFound if it does not
// exist.
func (r *Activities) Get(id int64) (types.Activity, error) {
	if r.s.db == nil {
		return types.Activity{}, types.ErrNotFound
	}
	var a types.Activity
	err := r.s.db.QueryRow(
		"SELECT "+activityColumns+" FROM activities WHERE id = ?", id,
	).Scan(&a.ID, &a.Name, &a.CategoryID, &a.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Activity{}, types.ErrNotFound
	}
	if err != nil {
		return types.Activity{}, fmt.Errorf("getting activity %d: %w", id, err)
	}
	return a, nil
}

// Create inserts an activity and returns its ID. The category link and
// description are optional.
func (r *Activities) Create(name string, categoryID *int64, description *string) (int64, error) {
	res, err := r.s.exec(
		"INSERT INTO activities (name, category_id, description) VALUES (?, ?, ?)",
		name, categoryID, description,
	)
	if err != nil {
		return 0, fmt.Errorf("creating activity: %w", err)
	}
	return res.LastInsertId()
}

// Update applies the non-nil patch fields. A patch with no fields set is
// a no-op.
func (r *Activities) Update(id int64, patch types.ActivityPatch) error {
	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	if _, err := r.s.exec("UPDATE activities SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating activity %d: %w", id, err)
	}
	return nil
}

// Remove deletes an activity. Its time entries go with it by cascade.
func (r *Activities) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM activities WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting activity %d: %w", id, err)
	}
	return nil
}

// hydrateActivity converts one row into a types.Activity.
func hydrateActivity(rows *sql.Rows) (types.Activity, error) {
	var a types.Activity
	err := rows.Scan(&a.ID, &a.Name, &a.CategoryID, &a.Description)
	return a, err
}
