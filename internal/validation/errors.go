package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies a validation failure
type ErrorType string

const (
	ErrorTypeRequired      ErrorType = "required"
	ErrorTypeInvalidFormat ErrorType = "invalid_format"
	ErrorTypeInvalidLength ErrorType = "invalid_length"
	ErrorTypeInvalidValue  ErrorType = "invalid_value"
)

// FieldError is a validation failure on a single input field
type FieldError struct {
	Field   string
	Type    ErrorType
	Message string
}

func (fe *FieldError) Error() string {
	return fe.Message
}

// Errors collects every failing field of one input
type Errors struct {
	Fields []*FieldError
}

func (e *Errors) Error() string {
	switch len(e.Fields) {
	case 0:
		return "validation error"
	case 1:
		return e.Fields[0].Error()
	}

	messages := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// Add records err if it is non-nil. Non-field errors are wrapped as invalid values.
func (e *Errors) Add(field string, err error) {
	if err == nil {
		return
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		e.Fields = append(e.Fields, fe)
		return
	}
	e.Fields = append(e.Fields, &FieldError{Field: field, Type: ErrorTypeInvalidValue, Message: err.Error()})
}

// Err returns nil when nothing failed, so callers can `return errs.Err()`
func (e *Errors) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// First returns the first failing field, or nil
func (e *Errors) First() *FieldError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields[0]
}

// IsValidationError reports whether err is (or wraps) a validation failure
func IsValidationError(err error) bool {
	var fe *FieldError
	var ve *Errors
	return errors.As(err, &fe) || errors.As(err, &ve)
}

func required(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Type:    ErrorTypeRequired,
		Message: fmt.Sprintf("%s is required", field),
	}
}
