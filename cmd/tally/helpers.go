// Shared helpers for tally CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/tally/internal/sqlite"
	"github.com/mesh-intelligence/tally/pkg/types"
)

// openStore resolves the data directory, opens the configured store, and
// returns it. The caller must defer store.Close(). A degraded store is
// returned as-is; commands report it but still run, mirroring the store's
// own never-fail contract.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: resolveBackend(),
		DataDir: dataDir,
	}

	store, err := sqlite.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if store.Degraded() {
		fmt.Fprintln(os.Stderr, "warning: storage unavailable, running with empty data and discarding writes")
	}
	return store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// userError prints the message and exits with the user-error code.
func userError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitUserError)
}

// derefOr returns *p, or fallback when p is nil.
func derefOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// optStr returns nil for an empty string, so unset flags map to NULL
// columns.
func optStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// optID returns nil for a zero ID, so unset flags map to NULL links.
func optID(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
