// Reminder commands: dated to-dos with pending and overdue views.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	reminderAddTitle       string
	reminderAddDescription string
	reminderAddDueDate     string
	reminderAddDueTime     string
	reminderAddCategory    int64
	reminderAddActivity    int64
	reminderListAll        bool
	reminderListOverdue    bool
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage reminders",
}

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reminderAddTitle == "" {
			userError("reminder add: --title is required")
		}
		if reminderAddDueDate == "" {
			userError("reminder add: --due is required")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Reminders().Create(
			reminderAddTitle,
			optStr(reminderAddDescription),
			reminderAddDueDate,
			optStr(reminderAddDueTime),
			optID(reminderAddCategory),
			optID(reminderAddActivity),
		)
		if err != nil {
			return fmt.Errorf("create reminder: %w", err)
		}
		fmt.Printf("Created reminder %d: %s (due %s)\n", id, reminderAddTitle, reminderAddDueDate)
		return nil
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders (pending by default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var reminders []types.Reminder
		switch {
		case reminderListOverdue:
			reminders, err = store.Reminders().Overdue()
		case reminderListAll:
			reminders, err = store.Reminders().All()
		default:
			reminders, err = store.Reminders().Pending()
		}
		if err != nil {
			return fmt.Errorf("list reminders: %w", err)
		}

		if flagJSON {
			return printJSON(reminders)
		}
		for _, r := range reminders {
			due := r.DueDate
			if r.DueTime != nil {
				due += " " + *r.DueTime
			}
			status := " "
			if r.Completed {
				status = "x"
			}
			fmt.Printf("[%s] %d\t%s\tdue %s\n", status, r.ID, r.Title, due)
		}
		return nil
	},
}

var reminderCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a reminder completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("reminder complete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Reminders().MarkCompleted(id); err != nil {
			return fmt.Errorf("complete reminder: %w", err)
		}
		fmt.Printf("Completed reminder %d\n", id)
		return nil
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("reminder delete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Reminders().Remove(id); err != nil {
			return fmt.Errorf("delete reminder: %w", err)
		}
		fmt.Printf("Deleted reminder %d\n", id)
		return nil
	},
}

func init() {
	reminderAddCmd.Flags().StringVar(&reminderAddTitle, "title", "", "reminder title (required)")
	reminderAddCmd.Flags().StringVar(&reminderAddDescription, "description", "", "reminder description")
	reminderAddCmd.Flags().StringVar(&reminderAddDueDate, "due", "", "due date YYYY-MM-DD (required)")
	reminderAddCmd.Flags().StringVar(&reminderAddDueTime, "at", "", "due time HH:MM")
	reminderAddCmd.Flags().Int64Var(&reminderAddCategory, "category", 0, "linked category ID")
	reminderAddCmd.Flags().Int64Var(&reminderAddActivity, "activity", 0, "linked activity ID")
	reminderAddCmd.MarkFlagRequired("title")
	reminderAddCmd.MarkFlagRequired("due")

	reminderListCmd.Flags().BoolVar(&reminderListAll, "all", false, "include completed reminders")
	reminderListCmd.Flags().BoolVar(&reminderListOverdue, "overdue", false, "only overdue reminders")

	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderCompleteCmd)
	reminderCmd.AddCommand(reminderDeleteCmd)
}
