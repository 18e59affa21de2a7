// Categories repository: typed CRUD over the categories table.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Categories accesses the categories table.
type Categories struct {
	s *Store
}

// Categories returns the category repository.
func (s *Store) Categories() *Categories {
	return &Categories{s: s}
}

// All returns every category ordered by name ascending.
func (r *Categories) All() ([]types.Category, error) {
	return collectRows(r.s,
		"SELECT id, name, weight FROM categories ORDER BY name",
		hydrateCategory,
	)
}

// Get retrieves a category by ID. Returns ErrNotFound if it does not exist.
func (r *Categories) Get(id int64) (types.Category, error) {
	if r.s.db == nil {
		return types.Category{}, types.ErrNotFound
	}
	var c types.Category
	err := r.s.db.QueryRow(
		"SELECT id, name, weight FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Category{}, types.ErrNotFound
	}
	if err != nil {
		return types.Category{}, fmt.Errorf("getting category %d: %w", id, err)
	}
	return c, nil
}

// Create inserts a category and returns its ID.
func (r *Categories) Create(name string, weight float64) (int64, error) {
	res, err := r.s.exec(
		"INSERT INTO categories (name, weight) VALUES (?, ?)", name, weight,
	)
	if err != nil {
		return 0, fmt.Errorf("creating category: %w", err)
	}
	return res.LastInsertId()
}

// Update applies the non-nil patch fields. A patch with no fields set is
// a no-op.
func (r *Categories) Update(id int64, patch types.CategoryPatch) error {
	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Weight != nil {
		sets = append(sets, "weight = ?")
		args = append(args, *patch.Weight)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	if _, err := r.s.exec("UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating category %d: %w", id, err)
	}
	return nil
}

// Remove deletes a category. Its logs go with it by cascade; linked
// activities and reminders keep their rows with the reference nulled.
func (r *Categories) Remove(id int64) error {
	if _, err := r.s.exec("DELETE FROM categories WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}

// hydrateCategory converts one row into a types.Category.
func hydrateCategory(rows *sql.Rows) (types.Category, error) {
	var c types.Category
	err := rows.Scan(&c.ID, &c.Name, &c.Weight)
	return c, err
}
