// Log commands: daily 1-10 ratings per category.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	logAddCategory int64
	logAddRating   int
	logAddNote     string
	logAddDate     string
	logListFrom    string
	logListTo      string
	logListLimit   int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage daily rating logs",
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a rating for a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logAddCategory == 0 {
			userError("log add: --category is required")
		}
		if logAddRating < 1 || logAddRating > 10 {
			userError("log add: %v", types.ErrInvalidRating)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Logs().Add(logAddCategory, logAddRating, optStr(logAddNote), logAddDate)
		if err != nil {
			return fmt.Errorf("add log: %w", err)
		}

		if flagJSON {
			log, err := store.Logs().Get(id)
			if err != nil {
				return err
			}
			return printJSON(log)
		}
		fmt.Printf("Logged %d/10 for category %d\n", logAddRating, logAddCategory)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logs, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var logs []types.Log
		if logListFrom != "" || logListTo != "" {
			if logListFrom == "" || logListTo == "" {
				userError("log list: --from and --to must be used together")
			}
			logs, err = store.Logs().ForRange(logListFrom, logListTo)
		} else {
			logs, err = store.Logs().Recent(logListLimit)
		}
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}

		if flagJSON {
			return printJSON(logs)
		}
		for _, l := range logs {
			fmt.Printf("%d\t%s\tcategory %d\t%d/10\t%s\n", l.ID, l.Date, l.CategoryID, l.Rating, derefOr(l.Note, ""))
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("log delete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Logs().Remove(id); err != nil {
			return fmt.Errorf("delete log: %w", err)
		}
		fmt.Printf("Deleted log %d\n", id)
		return nil
	},
}

func init() {
	logAddCmd.Flags().Int64Var(&logAddCategory, "category", 0, "category ID (required)")
	logAddCmd.Flags().IntVar(&logAddRating, "rating", 0, "rating 1-10 (required)")
	logAddCmd.Flags().StringVar(&logAddNote, "note", "", "optional note")
	logAddCmd.Flags().StringVar(&logAddDate, "date", "", "date YYYY-MM-DD (default: today)")
	logAddCmd.MarkFlagRequired("category")
	logAddCmd.MarkFlagRequired("rating")

	logListCmd.Flags().StringVar(&logListFrom, "from", "", "range start YYYY-MM-DD")
	logListCmd.Flags().StringVar(&logListTo, "to", "", "range end YYYY-MM-DD")
	logListCmd.Flags().IntVar(&logListLimit, "limit", 20, "maximum logs to list")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logDeleteCmd)
}
