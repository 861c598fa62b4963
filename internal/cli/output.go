package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/models"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it wrapped with the
// matching exit code. fallbackCode is used for errors with no better category.
func (f *OutputFormatter) Fail(fallbackCode string, err error) error {
	code, exit, suggestion := classify(err)
	if code == "" {
		code = fallbackCode
	}

	if fmtErr := f.ErrorWithSuggestion(code, api.Message(err), suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return Exit(exit, err)
}

// classify maps an error to an output code, exit code and suggestion
func classify(err error) (string, int, string) {
	switch {
	case validation.IsValidationError(err),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrInvalidPage),
		errors.Is(err, taskservice.ErrInvalidLimit):
		return "VALIDATION_ERROR", ExitValidation, ""
	case errors.Is(err, models.ErrNotAuthenticated):
		return "NOT_AUTHENTICATED", ExitUsage, "Log in with: taskdesk auth login"
	case api.IsUnauthorized(err):
		return "UNAUTHORIZED", ExitError, "Your token may have expired. Log in again with: taskdesk auth logout && taskdesk auth login"
	case api.IsNotFound(err):
		return "NOT_FOUND", ExitNotFound, ""
	case api.IsConflict(err):
		return "CONFLICT", ExitValidation, ""
	case api.StatusCode(err) == http.StatusBadRequest:
		return "BAD_REQUEST", ExitValidation, ""
	}
	return "", ExitError, ""
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
