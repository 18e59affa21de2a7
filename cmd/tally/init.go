// Init command: first-run storage setup and seeding.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tally storage",
	Long: `Init opens the configured storage backend, creating the schema and
seeding the default categories and activities on first run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		if store.Degraded() {
			fmt.Printf("Storage initialization failed; tally is running degraded (backend %s, data dir %s)\n", resolveBackend(), dataDir)
			return nil
		}

		cats, err := store.Categories().All()
		if err != nil {
			return err
		}
		acts, err := store.Activities().All()
		if err != nil {
			return err
		}

		fmt.Printf("Initialized %s backend at %s (%d categories, %d activities)\n",
			resolveBackend(), dataDir, len(cats), len(acts))
		return nil
	},
}
