// Streaks command: per-category consecutive-day runs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show current and best streaks per category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		streaks, err := store.Streaks()
		if err != nil {
			return fmt.Errorf("compute streaks: %w", err)
		}

		if flagJSON {
			return printJSON(streaks)
		}

		cats, err := store.Categories().All()
		if err != nil {
			return err
		}
		byCategory := make(map[int64]types.Streak, len(streaks))
		for _, st := range streaks {
			byCategory[st.CategoryID] = st
		}
		for _, c := range cats {
			st := byCategory[c.ID]
			fmt.Printf("%-20s current %d, best %d\n", c.Name, st.Current, st.Best)
		}
		return nil
	},
}
