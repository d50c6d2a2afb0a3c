package services

import (
	"errors"

	"gorm.io/gorm"
)

// Error is an expected service failure carrying the HTTP status it maps to.
// Anything else bubbling out of a service is an internal failure and is
// reported as a 500 with the underlying message attached.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Status: 404, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: 403, Message: message}
}

// Invalid covers both malformed input and conflicts (duplicate pending
// invitation, already-member), which are deliberately reported as 400.
func Invalid(message string) *Error {
	return &Error{Status: 400, Message: message}
}

// AsError unwraps a service error from err, if it is one.
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// notFoundOr translates a record miss into a NotFound with the given message
// and passes every other store failure through untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	return err
}
