package types

import "database/sql"

// Log records a single rating (1-10) for a category on a calendar date.
// Multiple logs for the same category and date are valid; the streak
// engine collapses them into one day. The 1-10 range is enforced by the
// caller, not by the schema.
type Log struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	Rating     int     `json:"rating"`
	Note       *string `json:"note"`
	Date       string  `json:"date"`
}

// LogPatch lists the log fields that may be updated independently.
// A nil field leaves the column untouched; Note distinguishes set-to-null
// from not-set.
type LogPatch struct {
	CategoryID *int64
	Rating     *int
	Note       *sql.NullString
	Date       *string
}
