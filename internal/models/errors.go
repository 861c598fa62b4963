package models

import "errors"

var (
	// ErrInvalidStatus indicates a status outside new, in_progress, completed
	ErrInvalidStatus = errors.New("invalid status (must be: new, in_progress, completed)")

	// ErrNotAuthenticated indicates an operation that needs a stored token
	ErrNotAuthenticated = errors.New("not logged in")
)
