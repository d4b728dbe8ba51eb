// Package models defines the server-side database entities.
package models

import "time"

// User is a registered account. Metadata carries the profile fields the
// client edits (full name, college, city, avatar URL, ...).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Metadata     map[string]string
	CreatedAt    time.Time
}
