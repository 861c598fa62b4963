package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, local database errors.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, or commands that need a login first.
	ExitUsage = 2

	// ExitNotFound indicates a requested task does not exist
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: responses that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid emails, short passwords, invalid status or deadline
	// values, and emails that are already registered.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code of a failed command.
// main unwraps it and exits with Code.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}
