// Tests for the categories repository.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tally/pkg/types"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "create populates ID and persists",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("Communication", 1.5)
				require.NoError(t, err)
				require.NotZero(t, id)

				got, err := s.Categories().Get(id)
				require.NoError(t, err)
				assert.Equal(t, "Communication", got.Name)
				assert.Equal(t, 1.5, got.Weight)
			},
		},
		{
			name: "get returns ErrNotFound for missing id",
			check: func(t *testing.T, s *Store) {
				_, err := s.Categories().Get(999999)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "all orders by name ascending",
			check: func(t *testing.T, s *Store) {
				clearAll(t, s)
				_, err := s.Categories().Create("zeta", 1)
				require.NoError(t, err)
				_, err = s.Categories().Create("alpha", 1)
				require.NoError(t, err)
				_, err = s.Categories().Create("mid", 1)
				require.NoError(t, err)

				cats, err := s.Categories().All()
				require.NoError(t, err)
				require.Len(t, cats, 3)
				assert.Equal(t, "alpha", cats[0].Name)
				assert.Equal(t, "mid", cats[1].Name)
				assert.Equal(t, "zeta", cats[2].Name)
			},
		},
		{
			name: "update applies only set fields",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("original", 1)
				require.NoError(t, err)

				err = s.Categories().Update(id, types.CategoryPatch{Weight: f64Ptr(3)})
				require.NoError(t, err)

				got, err := s.Categories().Get(id)
				require.NoError(t, err)
				assert.Equal(t, "original", got.Name)
				assert.Equal(t, 3.0, got.Weight)
			},
		},
		{
			name: "update with empty patch is a no-op",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("untouched", 2)
				require.NoError(t, err)

				require.NoError(t, s.Categories().Update(id, types.CategoryPatch{}))

				got, err := s.Categories().Get(id)
				require.NoError(t, err)
				assert.Equal(t, "untouched", got.Name)
				assert.Equal(t, 2.0, got.Weight)
			},
		},
		{
			name: "remove deletes the category",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("doomed", 1)
				require.NoError(t, err)

				require.NoError(t, s.Categories().Remove(id))

				_, err = s.Categories().Get(id)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "remove cascades to logs",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("with logs", 1)
				require.NoError(t, err)
				logID, err := s.Logs().Add(id, 7, nil, "2026-02-01")
				require.NoError(t, err)

				require.NoError(t, s.Categories().Remove(id))

				_, err = s.Logs().Get(logID)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "remove nulls the link on activities and reminders",
			check: func(t *testing.T, s *Store) {
				id, err := s.Categories().Create("linked", 1)
				require.NoError(t, err)
				actID, err := s.Activities().Create("act", &id, nil)
				require.NoError(t, err)
				remID, err := s.Reminders().Create("rem", nil, "2026-02-01", nil, &id, nil)
				require.NoError(t, err)

				require.NoError(t, s.Categories().Remove(id))

				act, err := s.Activities().Get(actID)
				require.NoError(t, err)
				assert.Nil(t, act.CategoryID)

				rem, err := s.Reminders().Get(remID)
				require.NoError(t, err)
				assert.Nil(t, rem.CategoryID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			tt.check(t, s)
		})
	}
}
