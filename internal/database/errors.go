package database

import "errors"

var (
	// ErrSessionNotFound indicates no token is stored for the API base URL
	ErrSessionNotFound = errors.New("session not found")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrTaskNotFound = errors.New("task not found")
)
