package models

import "time"

// RefreshToken is a server-stored opaque token that can be exchanged for a
// fresh access/refresh pair until it expires or is revoked.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
