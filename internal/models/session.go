package models

import "time"

// Credentials is the body of register and login requests
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a persisted bearer token for one API base URL
type Session struct {
	APIURL    string
	Token     string
	Email     string
	CreatedAt time.Time
}
