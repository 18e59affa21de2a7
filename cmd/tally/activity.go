// Activity commands: the things time entries are booked against.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	activityAddName        string
	activityAddCategory    int64
	activityAddDescription string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage activities",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		acts, err := store.Activities().All()
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}

		if flagJSON {
			return printJSON(acts)
		}
		for _, a := range acts {
			line := fmt.Sprintf("%d\t%s", a.ID, a.Name)
			if a.CategoryID != nil {
				line += fmt.Sprintf("\t(category %d)", *a.CategoryID)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if activityAddName == "" {
			userError("activity add: %v", types.ErrInvalidName)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Activities().Create(activityAddName, optID(activityAddCategory), optStr(activityAddDescription))
		if err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		if flagJSON {
			act, err := store.Activities().Get(id)
			if err != nil {
				return err
			}
			return printJSON(act)
		}
		fmt.Printf("Created activity %d: %s\n", id, activityAddName)
		return nil
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an activity and its time entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("activity delete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Activities().Remove(id); err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}
		fmt.Printf("Deleted activity %d\n", id)
		return nil
	},
}

func init() {
	activityAddCmd.Flags().StringVar(&activityAddName, "name", "", "activity name (required)")
	activityAddCmd.Flags().Int64Var(&activityAddCategory, "category", 0, "linked category ID")
	activityAddCmd.Flags().StringVar(&activityAddDescription, "description", "", "activity description")
	activityAddCmd.MarkFlagRequired("name")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityDeleteCmd)
}
