// Streak derivation: per-category consecutive-day runs computed from the
// log history on demand, never persisted.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Streaks derives the current and best consecutive-day logging streak for
// every category, freshly queried from the logs table. A category with no
// logs yields current=0, best=0.
func (s *Store) Streaks() ([]types.Streak, error) {
	categories, err := s.Categories().All()
	if err != nil {
		return nil, fmt.Errorf("loading categories for streaks: %w", err)
	}

	streaks := make([]types.Streak, 0, len(categories))
	for _, c := range categories {
		dates, err := collectRows(s,
			"SELECT date FROM logs WHERE category_id = ? ORDER BY date DESC",
			scanDate, c.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("loading logs for category %d: %w", c.ID, err)
		}
		current, best := computeStreak(dates, s.now())
		streaks = append(streaks, types.Streak{CategoryID: c.ID, Current: current, Best: best})
	}
	return streaks, nil
}

// computeStreak walks log dates ordered newest first. The cursor starts
// at today; the first date within one day of it opens a run, each date
// exactly one day before the cursor extends it, a date equal to the
// cursor is a same-day duplicate and counts nothing, and any other gap
// ends the walk. Because the loop can end while still inside a run, best
// is finalized once more after it.
func computeStreak(dates []string, now time.Time) (current, best int) {
	cursor, err := time.Parse(types.DateFormat, types.Date(now))
	if err != nil {
		return 0, 0
	}

	for _, ds := range dates {
		d, err := time.Parse(types.DateFormat, ds)
		if err != nil {
			break
		}
		delta := int(cursor.Sub(d).Hours() / 24)

		if current == 0 {
			if delta <= 1 {
				current = 1
				cursor = d
				continue
			}
			break
		}

		switch delta {
		case 0:
			// Same-day duplicate.
		case 1:
			current++
			cursor = d
		default:
			best = max(best, current)
			return current, best
		}
	}

	best = max(best, current)
	return current, best
}

// scanDate hydrates a single-column date row.
func scanDate(rows *sql.Rows) (string, error) {
	var d string
	err := rows.Scan(&d)
	return d, err
}
