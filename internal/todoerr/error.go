// Package todoerr defines the errors that can be rendered by the todolist server.
package todoerr

import (
	"net/http"

	"github.com/pkg/errors"
)

// A Kind classifies an error for its rendering.
type Kind int

const (
	// KindUnknown is used for all the errors not created by this package.
	KindUnknown Kind = iota
	// KindValidation is an empty or missing required field.
	KindValidation
	// KindMalformed is an unparseable request body.
	KindMalformed
	// KindNotFound is an id that does not resolve to a record.
	KindNotFound
	// KindStorage is a transaction or database failure.
	KindStorage
)

var statuses = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindMalformed:  http.StatusBadRequest,
	KindNotFound:   http.StatusNotFound,
	KindStorage:    http.StatusInternalServerError,
}

// An Error represents an error that can be rendered by the todolist server.
// Message is the public part of the error, the cause is only meant to be logged.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Validation returns a new validation error with the given message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Malformed returns a new malformed request error with the given message.
func Malformed(message string) *Error {
	return &Error{Kind: KindMalformed, Message: message}
}

// NotFound returns a new not found error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage returns a new storage error with the given message wrapping the given cause.
func Storage(cause error, message string) *Error {
	return &Error{Kind: KindStorage, Message: message, cause: cause}
}

// Error implements error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of the given error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status code for the given error.
func StatusCode(err error) int {
	if status, ok := statuses[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
