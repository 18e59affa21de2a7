// Package types defines the entity types, patch types, configuration, and
// standard errors for the tally storage system.
package types
