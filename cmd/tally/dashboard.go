// Dashboard command: streaks, recent-window health score, and overdue
// reminders in one view.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var dashboardDays int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show streaks, health score, and overdue reminders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		cats, err := store.Categories().All()
		if err != nil {
			return err
		}

		start := types.Date(time.Now().AddDate(0, 0, -dashboardDays))
		logs, err := store.Logs().ForRange(start, types.Today())
		if err != nil {
			return err
		}
		score := types.HealthScore(cats, logs)

		streaks, err := store.Streaks()
		if err != nil {
			return err
		}
		overdue, err := store.Reminders().Overdue()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"health_score": score,
				"streaks":      streaks,
				"overdue":      overdue,
			})
		}

		fmt.Printf("Health score (last %d days): %d/100\n\n", dashboardDays, score)

		byCategory := make(map[int64]types.Streak, len(streaks))
		for _, st := range streaks {
			byCategory[st.CategoryID] = st
		}
		fmt.Println("Streaks:")
		for _, c := range cats {
			st := byCategory[c.ID]
			fmt.Printf("  %-20s current %d, best %d\n", c.Name, st.Current, st.Best)
		}

		if len(overdue) > 0 {
			fmt.Printf("\nOverdue reminders (%d):\n", len(overdue))
			for _, r := range overdue {
				fmt.Printf("  %d\t%s\tdue %s\n", r.ID, r.Title, r.DueDate)
			}
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardDays, "days", 7, "health score window in days")
}
