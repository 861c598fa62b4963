package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// CreateAuthForm creates the login / register form. Both fields validate
// locally so an invalid submission never reaches the server.
func CreateAuthForm(email *string, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(func(s string) error {
				return validation.Email(strings.TrimSpace(s))
			}).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validation.Password).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
