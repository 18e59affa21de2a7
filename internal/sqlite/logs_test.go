// Tests for the logs repository.
package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tally/pkg/types"
)

func TestLogs(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store, categoryID int64)
	}{
		{
			name: "add with explicit date persists all fields",
			check: func(t *testing.T, s *Store, categoryID int64) {
				id, err := s.Logs().Add(categoryID, 8, strPtr("good day"), "2026-03-01")
				require.NoError(t, err)

				got, err := s.Logs().Get(id)
				require.NoError(t, err)
				assert.Equal(t, categoryID, got.CategoryID)
				assert.Equal(t, 8, got.Rating)
				require.NotNil(t, got.Note)
				assert.Equal(t, "good day", *got.Note)
				assert.Equal(t, "2026-03-01", got.Date)
			},
		},
		{
			name: "add with empty date defaults to today",
			check: func(t *testing.T, s *Store, categoryID int64) {
				setClock(s, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))

				id, err := s.Logs().Add(categoryID, 5, nil, "")
				require.NoError(t, err)

				got, err := s.Logs().Get(id)
				require.NoError(t, err)
				assert.Equal(t, "2026-03-10", got.Date)
				assert.Nil(t, got.Note)
			},
		},
		{
			name: "add with missing category violates the foreign key",
			check: func(t *testing.T, s *Store, categoryID int64) {
				_, err := s.Logs().Add(999999, 5, nil, "2026-03-01")
				assert.Error(t, err)
			},
		},
		{
			name: "for range is inclusive and newest first",
			check: func(t *testing.T, s *Store, categoryID int64) {
				for _, date := range []string{"2026-03-01", "2026-03-03", "2026-03-05", "2026-03-07"} {
					_, err := s.Logs().Add(categoryID, 6, nil, date)
					require.NoError(t, err)
				}

				logs, err := s.Logs().ForRange("2026-03-03", "2026-03-05")
				require.NoError(t, err)
				require.Len(t, logs, 2)
				assert.Equal(t, "2026-03-05", logs[0].Date)
				assert.Equal(t, "2026-03-03", logs[1].Date)
			},
		},
		{
			name: "recent applies limit and breaks date ties by id descending",
			check: func(t *testing.T, s *Store, categoryID int64) {
				first, err := s.Logs().Add(categoryID, 4, nil, "2026-03-02")
				require.NoError(t, err)
				second, err := s.Logs().Add(categoryID, 5, nil, "2026-03-02")
				require.NoError(t, err)
				_, err = s.Logs().Add(categoryID, 6, nil, "2026-03-01")
				require.NoError(t, err)

				logs, err := s.Logs().Recent(2)
				require.NoError(t, err)
				require.Len(t, logs, 2)
				assert.Equal(t, second, logs[0].ID)
				assert.Equal(t, first, logs[1].ID)
			},
		},
		{
			name: "by category since filters and orders oldest first",
			check: func(t *testing.T, s *Store, categoryID int64) {
				other, err := s.Categories().Create("other", 1)
				require.NoError(t, err)

				_, err = s.Logs().Add(categoryID, 5, nil, "2026-03-05")
				require.NoError(t, err)
				_, err = s.Logs().Add(categoryID, 5, nil, "2026-03-01")
				require.NoError(t, err)
				_, err = s.Logs().Add(categoryID, 5, nil, "2026-02-20")
				require.NoError(t, err)
				_, err = s.Logs().Add(other, 5, nil, "2026-03-04")
				require.NoError(t, err)

				logs, err := s.Logs().ByCategorySince(categoryID, "2026-03-01")
				require.NoError(t, err)
				require.Len(t, logs, 2)
				assert.Equal(t, "2026-03-01", logs[0].Date)
				assert.Equal(t, "2026-03-05", logs[1].Date)
			},
		},
		{
			name: "update can clear the note",
			check: func(t *testing.T, s *Store, categoryID int64) {
				id, err := s.Logs().Add(categoryID, 7, strPtr("to clear"), "2026-03-01")
				require.NoError(t, err)

				err = s.Logs().Update(id, types.LogPatch{Note: &sql.NullString{}})
				require.NoError(t, err)

				got, err := s.Logs().Get(id)
				require.NoError(t, err)
				assert.Nil(t, got.Note)
				assert.Equal(t, 7, got.Rating, "unpatched fields stay")
			},
		},
		{
			name: "update rating and date",
			check: func(t *testing.T, s *Store, categoryID int64) {
				id, err := s.Logs().Add(categoryID, 3, nil, "2026-03-01")
				require.NoError(t, err)

				err = s.Logs().Update(id, types.LogPatch{
					Rating: intPtr(9),
					Date:   strPtr("2026-03-02"),
				})
				require.NoError(t, err)

				got, err := s.Logs().Get(id)
				require.NoError(t, err)
				assert.Equal(t, 9, got.Rating)
				assert.Equal(t, "2026-03-02", got.Date)
			},
		},
		{
			name: "remove deletes the log",
			check: func(t *testing.T, s *Store, categoryID int64) {
				id, err := s.Logs().Add(categoryID, 5, nil, "2026-03-01")
				require.NoError(t, err)

				require.NoError(t, s.Logs().Remove(id))

				_, err = s.Logs().Get(id)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			clearAll(t, s)
			categoryID, err := s.Categories().Create("test category", 1)
			require.NoError(t, err)
			tt.check(t, s, categoryID)
		})
	}
}
