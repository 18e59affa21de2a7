package types

// Backup is the whole-database export/import document: one array per
// entity table plus a flat key/value mapping of the settings rows.
// Identifiers are preserved across export and import, so restoring a
// document reproduces an observably identical set of rows.
type Backup struct {
	Categories  []Category        `json:"categories"`
	Logs        []Log             `json:"logs"`
	Journal     []Journal         `json:"journal"`
	Activities  []Activity        `json:"activities"`
	TimeEntries []TimeEntry       `json:"time_entries"`
	Reminders   []Reminder        `json:"reminders"`
	Settings    map[string]string `json:"settings"`
}
