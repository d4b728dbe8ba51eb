package remote

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected marks remote rejections (duplicate account, invalid code,
	// failed upload). The wrapped message is the server's, verbatim.
	ErrRejected = errors.New("rejected")
)
