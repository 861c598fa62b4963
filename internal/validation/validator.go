package validation

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// MinPasswordLength is the shortest password accepted by the auth form
const MinPasswordLength = 6

// Required fails when value is empty after trimming whitespace
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return required(field)
	}
	return nil
}

// Email checks that value is a single bare address of the form user@domain.tld
func Email(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return required("email")
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return invalidEmail(value)
	}

	at := strings.LastIndex(value, "@")
	domain := value[at+1:]
	if at < 1 || !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return invalidEmail(value)
	}
	return nil
}

func invalidEmail(value string) error {
	return &FieldError{
		Field:   "email",
		Type:    ErrorTypeInvalidFormat,
		Message: fmt.Sprintf("%q is not a valid email address", value),
	}
}

// Password requires at least MinPasswordLength characters
func Password(value string) error {
	if value == "" {
		return required("password")
	}
	if len([]rune(value)) < MinPasswordLength {
		return &FieldError{
			Field:   "password",
			Type:    ErrorTypeInvalidLength,
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
		}
	}
	return nil
}

// Credentials validates both auth fields and reports every failure
func Credentials(c models.Credentials) error {
	errs := &Errors{}
	errs.Add("email", Email(c.Email))
	errs.Add("password", Password(c.Password))
	return errs.Err()
}

// Status parses value into a known status
func Status(value string) (models.Status, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", required("status")
	}
	s := models.Status(strings.ToLower(value))
	if !s.Valid() {
		return "", &FieldError{
			Field:   "status",
			Type:    ErrorTypeInvalidValue,
			Message: fmt.Sprintf("invalid status '%s' (must be: new, in_progress, completed)", value),
		}
	}
	return s, nil
}

// OptionalStatus is Status that also accepts the empty string, used by filters
func OptionalStatus(value string) (models.Status, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return Status(value)
}

// Deadline parses a YYYY-MM-DD date (local midnight) or an RFC 3339 timestamp
func Deadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, required("deadline")
	}
	if t, err := time.ParseInLocation(models.DeadlineLayout, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &FieldError{
		Field:   "deadline",
		Type:    ErrorTypeInvalidFormat,
		Message: fmt.Sprintf("invalid deadline '%s' (expected YYYY-MM-DD)", value),
	}
}

// OptionalDeadline is Deadline that also accepts the empty string, used by filters
func OptionalDeadline(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return Deadline(value)
}

// PageSize accepts only the page sizes offered by the task table
func PageSize(size int) error {
	if !slices.Contains(models.PageSizes, size) {
		return &FieldError{
			Field:   "limit",
			Type:    ErrorTypeInvalidValue,
			Message: fmt.Sprintf("invalid page size %d (must be: 10, 20, 30)", size),
		}
	}
	return nil
}

// TaskInput checks that every field of a task body is present and valid
func TaskInput(in models.TaskInput) error {
	errs := &Errors{}
	errs.Add("title", Required("title", in.Title))
	errs.Add("description", Required("description", in.Description))
	if in.Status == "" {
		errs.Add("status", required("status"))
	} else if !in.Status.Valid() {
		_, err := Status(string(in.Status))
		errs.Add("status", err)
	}
	if in.Deadline.IsZero() {
		errs.Add("deadline", required("deadline"))
	}
	return errs.Err()
}
