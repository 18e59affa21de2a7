// Package tally holds module-wide metadata.
package tally

// Version is the tally release version.
const Version = "v0.1.0"
