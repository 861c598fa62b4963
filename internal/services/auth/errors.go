package auth

import "errors"

// Auth-related errors
var (
	// ErrNoToken is returned when a login succeeds without a token in the body
	ErrNoToken = errors.New("server returned no token")
)
