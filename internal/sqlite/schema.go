// Schema DDL for the tally tables. Creation is idempotent and runs on
// every open; there is no migration machinery, schema changes are not
// supported.
package sqlite

import (
	"database/sql"
	"fmt"
)

const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    weight REAL DEFAULT 1
);`

	createLogs = `CREATE TABLE IF NOT EXISTS logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category_id INTEGER NOT NULL,
    rating INTEGER NOT NULL,
    note TEXT,
    date TEXT NOT NULL,
    FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE CASCADE
);`

	createJournal = `CREATE TABLE IF NOT EXISTS journal (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);`

	createActivities = `CREATE TABLE IF NOT EXISTS activities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category_id INTEGER,
    description TEXT,
    FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE SET NULL
);`

	createTimeEntries = `CREATE TABLE IF NOT EXISTS time_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    activity_id INTEGER NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT,
    duration_minutes INTEGER,
    note TEXT,
    date TEXT NOT NULL,
    FOREIGN KEY(activity_id) REFERENCES activities(id) ON DELETE CASCADE
);`

	createReminders = `CREATE TABLE IF NOT EXISTS reminders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    due_date TEXT NOT NULL,
    due_time TEXT,
    completed INTEGER DEFAULT 0,
    category_id INTEGER,
    activity_id INTEGER,
    created_at TEXT NOT NULL,
    FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE SET NULL,
    FOREIGN KEY(activity_id) REFERENCES activities(id) ON DELETE SET NULL
);`
)

// Index DDL for common queries.
const (
	idxLogsCategoryDate   = `CREATE INDEX IF NOT EXISTS idx_logs_category_date ON logs(category_id, date);`
	idxLogsDate           = `CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);`
	idxTimeEntriesOpen    = `CREATE INDEX IF NOT EXISTS idx_time_entries_activity ON time_entries(activity_id);`
	idxRemindersDue       = `CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(completed, due_date);`
	idxActivitiesCategory = `CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createLogs,
	createJournal,
	createSettings,
	createActivities,
	createTimeEntries,
	createReminders,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxLogsCategoryDate,
	idxLogsDate,
	idxTimeEntriesOpen,
	idxRemindersDue,
	idxActivitiesCategory,
}

// initSchema enables foreign-key enforcement and creates the tables and
// indexes. Safe to invoke on every process start.
func initSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
