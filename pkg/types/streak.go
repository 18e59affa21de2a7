package types

// Streak is derived from the log history of one category, not persisted.
// Current is the run of consecutive calendar days with at least one log,
// ending today or yesterday; Best is the longest such run ever observed.
type Streak struct {
	CategoryID int64 `json:"category_id"`
	Current    int   `json:"current"`
	Best       int   `json:"best"`
}
