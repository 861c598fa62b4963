package models

import "time"

// User is an account on the API server. PasswordHash never leaves the server.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
