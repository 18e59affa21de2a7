// Whole-database export and destructive restore. The same document and
// insert path also back the kv backend's blob image.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// ExportAll reads every table in full and returns the backup document:
// one array per entity table plus the flat settings map. Rows are ordered
// by ID (settings by key) so repeated exports of the same state are
// byte-identical.
func (s *Store) ExportAll() (types.Backup, error) {
	return s.exportDocument()
}

func (s *Store) exportDocument() (types.Backup, error) {
	doc := types.Backup{}
	var err error

	if doc.Categories, err = collectRows(s,
		"SELECT id, name, weight FROM categories ORDER BY id", hydrateCategory); err != nil {
		return types.Backup{}, fmt.Errorf("exporting categories: %w", err)
	}
	if doc.Logs, err = collectRows(s,
		"SELECT "+logColumns+" FROM logs ORDER BY id", hydrateLog); err != nil {
		return types.Backup{}, fmt.Errorf("exporting logs: %w", err)
	}
	if doc.Journal, err = collectRows(s,
		"SELECT "+journalColumns+" FROM journal ORDER BY id", hydrateJournal); err != nil {
		return types.Backup{}, fmt.Errorf("exporting journal: %w", err)
	}
	if doc.Activities, err = collectRows(s,
		"SELECT "+activityColumns+" FROM activities ORDER BY id", hydrateActivity); err != nil {
		return types.Backup{}, fmt.Errorf("exporting activities: %w", err)
	}
	if doc.TimeEntries, err = collectRows(s,
		"SELECT "+timeEntryColumns+" FROM time_entries ORDER BY id", hydrateTimeEntry); err != nil {
		return types.Backup{}, fmt.Errorf("exporting time entries: %w", err)
	}
	if doc.Reminders, err = collectRows(s,
		"SELECT "+reminderColumns+" FROM reminders ORDER BY id", hydrateReminder); err != nil {
		return types.Backup{}, fmt.Errorf("exporting reminders: %w", err)
	}
	if doc.Settings, err = s.Settings().All(); err != nil {
		return types.Backup{}, fmt.Errorf("exporting settings: %w", err)
	}

	return doc, nil
}

// ImportAll destructively restores the document: every existing row in
// every table is deleted, then the document's records are re-inserted
// preserving their original identifiers. The whole restore runs in one
// transaction; any insertion failure (for example a log referencing a
// missing category) rolls everything back, leaving prior state intact,
// and propagates. A degraded store discards the import.
func (s *Store) ImportAll(doc types.Backup) error {
	if s.discard || s.db == nil {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	// Children before parents, so no cascade ordering surprises.
	for _, table := range []string{"reminders", "time_entries", "logs", "activities", "journal", "categories", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertDocument(tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	s.snapshot()
	return nil
}

// insertDocument re-inserts every record of the document in dependency
// order, preserving identifiers. Shared by ImportAll and the kv backend's
// image restore.
func insertDocument(tx *sql.Tx, doc types.Backup) error {
	for _, c := range doc.Categories {
		if _, err := tx.Exec(
			"INSERT INTO categories (id, name, weight) VALUES (?, ?, ?)",
			c.ID, c.Name, c.Weight,
		); err != nil {
			return fmt.Errorf("importing category %d: %w", c.ID, err)
		}
	}
	for _, a := range doc.Activities {
		if _, err := tx.Exec(
			"INSERT INTO activities (id, name, category_id, description) VALUES (?, ?, ?, ?)",
			a.ID, a.Name, a.CategoryID, a.Description,
		); err != nil {
			return fmt.Errorf("importing activity %d: %w", a.ID, err)
		}
	}
	for _, l := range doc.Logs {
		if _, err := tx.Exec(
			"INSERT INTO logs (id, category_id, rating, note, date) VALUES (?, ?, ?, ?, ?)",
			l.ID, l.CategoryID, l.Rating, l.Note, l.Date,
		); err != nil {
			return fmt.Errorf("importing log %d: %w", l.ID, err)
		}
	}
	for _, j := range doc.Journal {
		if _, err := tx.Exec(
			"INSERT INTO journal (id, text, date, tags) VALUES (?, ?, ?, ?)",
			j.ID, j.Text, j.Date, j.Tags,
		); err != nil {
			return fmt.Errorf("importing journal entry %d: %w", j.ID, err)
		}
	}
	for _, e := range doc.TimeEntries {
		if _, err := tx.Exec(
			"INSERT INTO time_entries (id, activity_id, start_time, end_time, duration_minutes, note, date) VALUES (?, ?, ?, ?, ?, ?, ?)",
			e.ID, e.ActivityID, e.StartTime, e.EndTime, e.DurationMinutes, e.Note, e.Date,
		); err != nil {
			return fmt.Errorf("importing time entry %d: %w", e.ID, err)
		}
	}
	for _, rem := range doc.Reminders {
		if _, err := tx.Exec(
			"INSERT INTO reminders (id, title, description, due_date, due_time, completed, category_id, activity_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			rem.ID, rem.Title, rem.Description, rem.DueDate, rem.DueTime, boolToInt(rem.Completed), rem.CategoryID, rem.ActivityID, rem.CreatedAt,
		); err != nil {
			return fmt.Errorf("importing reminder %d: %w", rem.ID, err)
		}
	}
	for key, value := range doc.Settings {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			return fmt.Errorf("importing setting %q: %w", key, err)
		}
	}
	return nil
}

// restoreImage loads a serialized blob image into the in-memory database
// on kv-backend startup. Foreign keys are switched off around the load;
// the image was exported as a consistent whole, and insertion order
// within the document should not matter here.
func (s *Store) restoreImage(data []byte) error {
	var doc types.Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding blob image: %w", err)
	}

	if _, err := s.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disabling foreign keys for restore: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning restore transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertDocument(tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing restore: %w", err)
	}

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("re-enabling foreign keys: %w", err)
	}
	return nil
}
