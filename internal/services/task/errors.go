package task

import "errors"

// Task-related errors
var (
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidPage   = errors.New("invalid page: must be >= 1")
	ErrInvalidLimit  = errors.New("invalid limit: must be between 1 and 100")

	// ErrStatusUnchanged is returned when a status change would not change anything.
	// No request is sent.
	ErrStatusUnchanged = errors.New("task already has that status")
)
