// Export and import commands: whole-database backup documents.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	exportOutput string
	importForce  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON backup document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, err := store.ExportAll()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal backup: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON backup document",
	Long: `Import reads a backup document and destructively restores it: every
existing record is deleted and replaced by the document's contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importForce {
			userError("import: pass --force to confirm replacing all existing data")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		var doc types.Backup
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode backup: %w", err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ImportAll(doc); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Printf("Imported %d categories, %d logs, %d journal entries, %d activities, %d time entries, %d reminders\n",
			len(doc.Categories), len(doc.Logs), len(doc.Journal),
			len(doc.Activities), len(doc.TimeEntries), len(doc.Reminders))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "write to file instead of stdout")
	importCmd.Flags().BoolVar(&importForce, "force", false, "confirm destructive restore")
}
