package types

import (
	"database/sql"
	"encoding/json"
)

// Journal is a free-form dated entry, independent of any category. Tags
// are stored as a JSON-encoded string array in a single column.
type Journal struct {
	ID   int64   `json:"id"`
	Text string  `json:"text"`
	Date string  `json:"date"`
	Tags *string `json:"tags"`
}

// JournalPatch lists the journal fields that may be updated independently.
type JournalPatch struct {
	Text *string
	Date *string
	Tags *sql.NullString
}

// EncodeTags serializes a tag list into the stored column format.
// A nil slice encodes as an empty JSON array.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

// TagList decodes the entry's tags column. Absent or malformed tags
// decode as an empty list.
func (j Journal) TagList() []string {
	if j.Tags == nil {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*j.Tags), &tags); err != nil {
		return nil
	}
	return tags
}
