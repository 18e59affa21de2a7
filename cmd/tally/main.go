// Package main provides the tally CLI: local-first habit, journal, and
// time tracking on top of the sqlite store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
