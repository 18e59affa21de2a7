// Timer commands: start/stop time tracking and manual entries.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	timerStartActivity int64
	timerStartNote     string
	timerStopNote      string
	timerAddActivity   int64
	timerAddMinutes    int64
	timerAddNote       string
	timerAddDate       string
	timerListLimit     int
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Track time against activities",
}

var timerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a timer for an activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if timerStartActivity == 0 {
			userError("timer start: --activity is required")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.TimeEntries().Start(timerStartActivity, optStr(timerStartNote))
		if err != nil {
			return fmt.Errorf("start timer: %w", err)
		}
		fmt.Printf("Started timer %d for activity %d\n", id, timerStartActivity)
		return nil
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Stop a running timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("timer stop: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stopped, err := store.TimeEntries().Stop(id, optStr(timerStopNote))
		if err != nil {
			return fmt.Errorf("stop timer: %w", err)
		}
		if !stopped {
			fmt.Printf("Timer %d is not running\n", id)
			return nil
		}

		entry, err := store.TimeEntries().Get(id)
		if err != nil {
			return err
		}
		if entry.DurationMinutes != nil {
			fmt.Printf("Stopped timer %d after %d minutes\n", id, *entry.DurationMinutes)
		} else {
			fmt.Printf("Stopped timer %d\n", id)
		}
		return nil
	},
}

var timerActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List running timers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.TimeEntries().Active()
		if err != nil {
			return fmt.Errorf("list active timers: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}
		for _, e := range entries {
			fmt.Printf("%d\tactivity %d\tsince %s\t%s\n", e.ID, e.ActivityID, e.StartTime, derefOr(e.Note, ""))
		}
		return nil
	},
}

var timerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a finished session of a given length",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if timerAddActivity == 0 {
			userError("timer add: --activity is required")
		}
		if timerAddMinutes <= 0 {
			userError("timer add: --minutes must be positive")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.TimeEntries().Add(timerAddActivity, timerAddMinutes, optStr(timerAddNote), timerAddDate)
		if err != nil {
			return fmt.Errorf("add time entry: %w", err)
		}
		fmt.Printf("Recorded %d minutes for activity %d (entry %d)\n", timerAddMinutes, timerAddActivity, id)
		return nil
	},
}

var timerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent time entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.TimeEntries().Recent(timerListLimit)
		if err != nil {
			return fmt.Errorf("list time entries: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}
		for _, e := range entries {
			duration := "running"
			if e.DurationMinutes != nil {
				duration = fmt.Sprintf("%d min", *e.DurationMinutes)
			}
			fmt.Printf("%d\t%s\tactivity %d\t%s\n", e.ID, e.Date, e.ActivityID, duration)
		}
		return nil
	},
}

func init() {
	timerStartCmd.Flags().Int64Var(&timerStartActivity, "activity", 0, "activity ID (required)")
	timerStartCmd.Flags().StringVar(&timerStartNote, "note", "", "optional note")
	timerStartCmd.MarkFlagRequired("activity")

	timerStopCmd.Flags().StringVar(&timerStopNote, "note", "", "optional note")

	timerAddCmd.Flags().Int64Var(&timerAddActivity, "activity", 0, "activity ID (required)")
	timerAddCmd.Flags().Int64Var(&timerAddMinutes, "minutes", 0, "session length in minutes (required)")
	timerAddCmd.Flags().StringVar(&timerAddNote, "note", "", "optional note")
	timerAddCmd.Flags().StringVar(&timerAddDate, "date", "", "date YYYY-MM-DD (default: today)")
	timerAddCmd.MarkFlagRequired("activity")
	timerAddCmd.MarkFlagRequired("minutes")

	timerListCmd.Flags().IntVar(&timerListLimit, "limit", 20, "maximum entries to list")

	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerStopCmd)
	timerCmd.AddCommand(timerActiveCmd)
	timerCmd.AddCommand(timerAddCmd)
	timerCmd.AddCommand(timerListCmd)
}
