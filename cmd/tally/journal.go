// Journal commands: dated free-form entries with tags.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	journalAddText   string
	journalAddTags   string
	journalAddDate   string
	journalListLimit int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a journal entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if journalAddText == "" {
			userError("journal add: --text is required")
		}

		var tags []string
		if journalAddTags != "" {
			for _, tag := range strings.Split(journalAddTags, ",") {
				tags = append(tags, strings.TrimSpace(tag))
			}
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Journal().Add(journalAddText, tags, journalAddDate)
		if err != nil {
			return fmt.Errorf("add journal entry: %w", err)
		}

		if flagJSON {
			entry, err := store.Journal().Get(id)
			if err != nil {
				return err
			}
			return printJSON(entry)
		}
		fmt.Printf("Added journal entry %d\n", id)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Journal().Recent(journalListLimit)
		if err != nil {
			return fmt.Errorf("list journal: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}
		for _, e := range entries {
			line := e.Text
			if tags := e.TagList(); len(tags) > 0 {
				line += " [" + strings.Join(tags, ", ") + "]"
			}
			fmt.Printf("%d\t%s\t%s\n", e.ID, e.Date, line)
		}
		return nil
	},
}

var journalSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search journal entries by text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Journal().Search(args[0])
		if err != nil {
			return fmt.Errorf("search journal: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}
		for _, e := range entries {
			fmt.Printf("%d\t%s\t%s\n", e.ID, e.Date, e.Text)
		}
		return nil
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("journal delete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Journal().Remove(id); err != nil {
			return fmt.Errorf("delete journal entry: %w", err)
		}
		fmt.Printf("Deleted journal entry %d\n", id)
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalAddText, "text", "", "entry text (required)")
	journalAddCmd.Flags().StringVar(&journalAddTags, "tags", "", "comma-separated tags")
	journalAddCmd.Flags().StringVar(&journalAddDate, "date", "", "date YYYY-MM-DD (default: today)")
	journalAddCmd.MarkFlagRequired("text")

	journalListCmd.Flags().IntVar(&journalListLimit, "limit", 20, "maximum entries to list")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalSearchCmd)
	journalCmd.AddCommand(journalDeleteCmd)
}
