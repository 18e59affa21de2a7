package types

import "database/sql"

// Activity is something the user spends timed sessions on. The category
// link is optional; deleting the linked category nulls it rather than
// deleting the activity.
type Activity struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CategoryID  *int64  `json:"category_id"`
	Description *string `json:"description"`
}

// ActivityPatch lists the activity fields that may be updated
// independently. CategoryID and Description distinguish set-to-null from
// not-set.
type ActivityPatch struct {
	Name        *string
	CategoryID  *sql.NullInt64
	Description *sql.NullString
}
