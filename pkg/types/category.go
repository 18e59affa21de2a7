package types

// Category is a rated area of the user's life (for example "Patience").
// Its weight scales the category's contribution to the health score.
// Deleting a category cascades to its logs and nulls the reference in
// activities and reminders, per the schema's foreign-key policy.
type Category struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// CategoryPatch lists the category fields that may be updated
// independently. A nil field leaves the column untouched.
type CategoryPatch struct {
	Name   *string
	Weight *float64
}
