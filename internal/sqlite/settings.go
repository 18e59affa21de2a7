// Settings repository: string key/value pairs with upsert semantics.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Settings accesses the settings table.
type Settings struct {
	s *Store
}

// Settings returns the settings repository.
func (s *Store) Settings() *Settings {
	return &Settings{s: s}
}

// Get returns the value for key. Returns ErrNotFound when the key has
// never been set.
func (r *Settings) Get(key string) (string, error) {
	if r.s.db == nil {
		return "", types.ErrNotFound
	}
	var value string
	err := r.s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// Set inserts the pair, or overwrites the value in place when the key
// already exists. There is never more than one row per key.
func (r *Settings) Set(key, value string) error {
	_, err := r.s.exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// All returns every settings row as a flat map.
func (r *Settings) All() (map[string]string, error) {
	settings := map[string]string{}
	if r.s.db == nil {
		return settings, nil
	}

	rows, err := r.s.db.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("hydrating setting: %w", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings: %w", err)
	}
	return settings, nil
}
