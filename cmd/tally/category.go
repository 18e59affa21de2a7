// Category commands: the weighted dimensions logs are rated against.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	categoryAddName      string
	categoryAddWeight    float64
	categoryUpdateName   string
	categoryUpdateWeight float64
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage rating categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their streaks",
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

		if flagJSON {
			return printJSON(cats)
		}

		streaks, err := store.Streaks()
		if err != nil {
			return err
		}
		byCategory := make(map[int64]types.Streak, len(streaks))
		for _, st := range streaks {
			byCategory[st.CategoryID] = st
		}

		for _, c := range cats {
			st := byCategory[c.ID]
			fmt.Printf("%d\t%s\t(weight %.1f, streak %d, best %d)\n", c.ID, c.Name, c.Weight, st.Current, st.Best)
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if categoryAddName == "" {
			userError("category add: %v", types.ErrInvalidName)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Categories().Create(categoryAddName, categoryAddWeight)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}

		if flagJSON {
			cat, err := store.Categories().Get(id)
			if err != nil {
				return err
			}
			return printJSON(cat)
		}
		fmt.Printf("Created category %d: %s\n", id, categoryAddName)
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category's name or weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("category update: %v: %q", types.ErrInvalidID, args[0])
		}

		patch := types.CategoryPatch{}
		if cmd.Flags().Changed("name") {
			patch.Name = &categoryUpdateName
		}
		if cmd.Flags().Changed("weight") {
			patch.Weight = &categoryUpdateWeight
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Categories().Update(id, patch); err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		fmt.Printf("Updated category %d\n", id)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category and its logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			userError("category delete: %v: %q", types.ErrInvalidID, args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Categories().Remove(id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		fmt.Printf("Deleted category %d\n", id)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddName, "name", "", "category name (required)")
	categoryAddCmd.Flags().Float64Var(&categoryAddWeight, "weight", 1, "category weight")
	categoryAddCmd.MarkFlagRequired("name")

	categoryUpdateCmd.Flags().StringVar(&categoryUpdateName, "name", "", "new name")
	categoryUpdateCmd.Flags().Float64Var(&categoryUpdateWeight, "weight", 1, "new weight")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
