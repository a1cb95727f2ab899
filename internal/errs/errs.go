// Package errs holds the error taxonomy handlers translate into HTTP responses.
//
// Every HTTPError serializes to {"error": "<message>"}. Persistence errors keep
// the driver error as cause for logging; the client only sees Message.
package errs

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	cause   error
}

func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.cause }

// NewValidationError is a missing or malformed request field (400).
func NewValidationError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError is a lookup or delete that matched no row (404).
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// NewUnauthorizedError is a credential mismatch (401).
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Message: message}
}

// NewPersistenceError is any database failure (500). cause is logged, never returned.
func NewPersistenceError(message string, cause error) *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Message: message, cause: cause}
}

// As extracts an *HTTPError from err. Unknown errors become a generic 500.
func As(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewPersistenceError(http.StatusText(http.StatusInternalServerError), err)
}
