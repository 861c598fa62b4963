package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

var errInvalidRequestBody = errors.New("invalid request body")

// apiError is an error with the HTTP status it maps to.
// It is written as {"error": message}.
type apiError struct {
	Code    int
	Message string
}

func (e apiError) Error() string {
	return e.Message
}

func newAPIError(code int, message string) apiError {
	return apiError{Code: code, Message: message}
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err apiError) {
	writeJSON(w, err.Code, map[string]string{"error": err.Message})
}

// decodeBody reads a JSON request body into v, rejecting unknown fields
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errInvalidRequestBody
	}
	return nil
}
