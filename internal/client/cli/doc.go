// Package cli implements the interactive TalentConnect command-line
// client: a small REPL that hosts the registration, profile, and listing
// workflows against the hosted backend.
package cli
