// Tests for the reminders repository: CRUD, completion, and the
// date/time-sensitive pending and overdue queries.
package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tally/pkg/types"
)

func TestReminders(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "create starts not completed with created_at stamped",
			check: func(t *testing.T, s *Store) {
				now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
				setClock(s, now)

				id, err := s.Reminders().Create("call back", strPtr("about the visit"), "2026-06-05", strPtr("14:00"), nil, nil)
				require.NoError(t, err)

				got, err := s.Reminders().Get(id)
				require.NoError(t, err)
				assert.Equal(t, "call back", got.Title)
				assert.False(t, got.Completed)
				assert.Equal(t, "2026-06-05", got.DueDate)
				require.NotNil(t, got.DueTime)
				assert.Equal(t, "14:00", *got.DueTime)
				assert.Equal(t, now.Format(time.RFC3339), got.CreatedAt)
			},
		},
		{
			name: "all orders by due date then due time then id",
			check: func(t *testing.T, s *Store) {
				late, err := s.Reminders().Create("late", nil, "2026-06-10", nil, nil, nil)
				require.NoError(t, err)
				earlyPM, err := s.Reminders().Create("early pm", nil, "2026-06-05", strPtr("15:00"), nil, nil)
				require.NoError(t, err)
				earlyAM, err := s.Reminders().Create("early am", nil, "2026-06-05", strPtr("09:00"), nil, nil)
				require.NoError(t, err)

				all, err := s.Reminders().All()
				require.NoError(t, err)
				require.Len(t, all, 3)
				assert.Equal(t, earlyAM, all[0].ID)
				assert.Equal(t, earlyPM, all[1].ID)
				assert.Equal(t, late, all[2].ID)
			},
		},
		{
			name: "mark completed flips only the flag",
			check: func(t *testing.T, s *Store) {
				id, err := s.Reminders().Create("finish report", nil, "2026-06-05", nil, nil, nil)
				require.NoError(t, err)

				require.NoError(t, s.Reminders().MarkCompleted(id))

				got, err := s.Reminders().Get(id)
				require.NoError(t, err)
				assert.True(t, got.Completed)
				assert.Equal(t, "finish report", got.Title)
			},
		},
		{
			name: "update can clear the due time and reopen",
			check: func(t *testing.T, s *Store) {
				id, err := s.Reminders().Create("flexible", nil, "2026-06-05", strPtr("10:00"), nil, nil)
				require.NoError(t, err)
				require.NoError(t, s.Reminders().MarkCompleted(id))

				open := false
				err = s.Reminders().Update(id, types.ReminderPatch{
					DueTime:   &sql.NullString{},
					Completed: &open,
				})
				require.NoError(t, err)

				got, err := s.Reminders().Get(id)
				require.NoError(t, err)
				assert.Nil(t, got.DueTime)
				assert.False(t, got.Completed)
			},
		},
		{
			name: "pending excludes completed reminders",
			check: func(t *testing.T, s *Store) {
				done, err := s.Reminders().Create("done", nil, "2026-06-01", nil, nil, nil)
				require.NoError(t, err)
				require.NoError(t, s.Reminders().MarkCompleted(done))
				open, err := s.Reminders().Create("open", nil, "2026-06-02", nil, nil, nil)
				require.NoError(t, err)

				pending, err := s.Reminders().Pending()
				require.NoError(t, err)
				require.Len(t, pending, 1)
				assert.Equal(t, open, pending[0].ID)
			},
		},
		{
			name: "remove deletes the reminder",
			check: func(t *testing.T, s *Store) {
				id, err := s.Reminders().Create("gone", nil, "2026-06-01", nil, nil, nil)
				require.NoError(t, err)

				require.NoError(t, s.Reminders().Remove(id))

				_, err = s.Reminders().Get(id)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			clearAll(t, s)
			tt.check(t, s)
		})
	}
}

func TestRemindersOverdue(t *testing.T) {
	// Fixed evaluation instant for every case: 2026-06-15 12:00.
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dueDate   string
		dueTime   *string
		completed bool
		overdue   bool
	}{
		{"due yesterday is overdue", "2026-06-14", nil, false, true},
		{"due yesterday with time is overdue", "2026-06-14", strPtr("23:00"), false, true},
		{"due today without time is not overdue", "2026-06-15", nil, false, false},
		{"due today before current time is overdue", "2026-06-15", strPtr("09:30"), false, true},
		{"due today after current time is not overdue", "2026-06-15", strPtr("15:00"), false, false},
		{"due tomorrow is not overdue", "2026-06-16", nil, false, false},
		{"completed yesterday is not overdue", "2026-06-14", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			clearAll(t, s)
			setClock(s, now)

			id, err := s.Reminders().Create("r", nil, tt.dueDate, tt.dueTime, nil, nil)
			require.NoError(t, err)
			if tt.completed {
				require.NoError(t, s.Reminders().MarkCompleted(id))
			}

			overdue, err := s.Reminders().Overdue()
			require.NoError(t, err)
			if tt.overdue {
				require.Len(t, overdue, 1)
				assert.Equal(t, id, overdue[0].ID)
			} else {
				assert.Empty(t, overdue)
			}

			// The SQL predicate and the in-process check agree.
			rem, err := s.Reminders().Get(id)
			require.NoError(t, err)
			assert.Equal(t, tt.overdue, rem.OverdueAt(now))
		})
	}
}
