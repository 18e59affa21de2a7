// Root command for the tally CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/internal/paths"
	"github.com/mesh-intelligence/tally/pkg/tally"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "tally",
	Short:   "Tally is a local-first habit and time tracker",
	Version: tally.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: file or kv (default: file)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(reminderCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > TALLY_DATA_DIR
// env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TALLY_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBackend returns the backend name: --backend flag > config.yaml
// backend > "file".
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	if configBackend != "" {
		return configBackend
	}
	return defaultBackend
}
