// Tests for first-run default seeding.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tally/pkg/types"
)

func TestSeedDefaults(t *testing.T) {
	t.Run("fresh store has four default categories with unit weight", func(t *testing.T) {
		s := setupStore(t)

		cats, err := s.Categories().All()
		require.NoError(t, err)
		require.Len(t, cats, 4)

		names := make([]string, 0, len(cats))
		for _, c := range cats {
			names = append(names, c.Name)
			assert.Equal(t, 1.0, c.Weight)
		}
		// All() orders by name.
		assert.Equal(t, []string{"Consistency", "Follow-through", "Patience", "Trust-building"}, names)
	})

	t.Run("fresh store has eight default activities", func(t *testing.T) {
		s := setupStore(t)

		acts, err := s.Activities().All()
		require.NoError(t, err)
		require.Len(t, acts, 8)
		for _, a := range acts {
			assert.Nil(t, a.CategoryID)
			assert.Nil(t, a.Description)
		}
	})

	t.Run("fresh store has an install id", func(t *testing.T) {
		s := setupStore(t)

		id, err := s.Settings().Get("install_id")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("reopen does not reseed", func(t *testing.T) {
		dir := t.TempDir()
		config := types.Config{Backend: types.BackendFile, DataDir: dir}

		s, err := Open(config)
		require.NoError(t, err)
		require.NoError(t, s.Close())

		s, err = Open(config)
		require.NoError(t, err)
		defer s.Close()

		cats, err := s.Categories().All()
		require.NoError(t, err)
		assert.Len(t, cats, 4)
	})

	t.Run("emptied table is not reseeded once populated", func(t *testing.T) {
		dir := t.TempDir()
		config := types.Config{Backend: types.BackendFile, DataDir: dir}

		s, err := Open(config)
		require.NoError(t, err)
		cats, err := s.Categories().All()
		require.NoError(t, err)
		for _, c := range cats {
			require.NoError(t, s.Categories().Remove(c.ID))
		}
		id, err := s.Categories().Create("only one", 1)
		require.NoError(t, err)
		require.NoError(t, s.Close())

		s, err = Open(config)
		require.NoError(t, err)
		defer s.Close()

		cats, err = s.Categories().All()
		require.NoError(t, err)
		require.Len(t, cats, 1)
		assert.Equal(t, id, cats[0].ID)
	})

	t.Run("install id is stable across reopens", func(t *testing.T) {
		dir := t.TempDir()
		config := types.Config{Backend: types.BackendFile, DataDir: dir}

		s, err := Open(config)
		require.NoError(t, err)
		first, err := s.Settings().Get("install_id")
		require.NoError(t, err)
		require.NoError(t, s.Close())

		s, err = Open(config)
		require.NoError(t, err)
		defer s.Close()

		second, err := s.Settings().Get("install_id")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
