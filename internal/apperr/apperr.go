// Package apperr defines the error taxonomy shared by all modules. Services
// wrap these sentinels with fmt.Errorf("...: %w", ...) and handlers translate
// them to HTTP status codes with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput marks caller-fixable validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict marks collisions with a concurrent mutation. Retryable.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks an absent referenced entity.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authorization failure.
	ErrForbidden = errors.New("forbidden")

	// ErrStore marks persistence-layer unavailability. The operation was not
	// committed unless the store explicitly confirmed it.
	ErrStore = errors.New("store failure")
)

// Status maps an error to the HTTP status code the API contract promises.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
