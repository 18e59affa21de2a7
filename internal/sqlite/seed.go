// First-run seeding of default categories and activities. Each table has
// its own idempotent guard: a table is seeded only while it is empty, so
// reseeding never happens once either table has rows, even if the other
// was seeded on a later run.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

// defaultCategories are created with unit weight when the categories
// table is empty.
var defaultCategories = []string{
	"Follow-through",
	"Consistency",
	"Trust-building",
	"Patience",
}

// defaultActivities are created when the activities table is empty.
var defaultActivities = []string{
	"Work - Deep Focus",
	"Work - Meetings",
	"Personal - Exercise",
	"Personal - Reading",
	"Personal - Learning",
	"Household",
	"Family Time",
	"Social",
}

// installIDKey is the settings key holding this installation's identifier.
const installIDKey = "install_id"

// seedDefaults runs the first-run guards. Degraded stores skip seeding
// entirely, the rows would be discarded anyway.
func (s *Store) seedDefaults() error {
	if s.discard || s.db == nil {
		return nil
	}

	seeded := false

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count == 0 {
		if err := s.insertDefaults("INSERT INTO categories (name, weight) VALUES (?, 1)", defaultCategories); err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
		seeded = true
	}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count); err != nil {
		return fmt.Errorf("counting activities: %w", err)
	}
	if count == 0 {
		if err := s.insertDefaults("INSERT INTO activities (name) VALUES (?)", defaultActivities); err != nil {
			return fmt.Errorf("seeding activities: %w", err)
		}
		seeded = true
	}

	// Tag the installation once; the ID survives export/import.
	var installID string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", installIDKey).Scan(&installID)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", installIDKey, generateUUID()); err != nil {
			return fmt.Errorf("writing install ID: %w", err)
		}
		seeded = true
	} else if err != nil {
		return fmt.Errorf("reading install ID: %w", err)
	}

	if seeded {
		s.snapshot()
	}
	return nil
}

// insertDefaults inserts one row per name inside a single transaction.
func (s *Store) insertDefaults(insertSQL string, names []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, name := range names {
		if _, err := stmt.Exec(name); err != nil {
			return fmt.Errorf("seeding %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
