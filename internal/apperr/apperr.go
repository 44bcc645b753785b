// Package apperr defines the error type used throughout belfry.
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a human-readable message.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two application errors by message so that formatted
// variants created with Fmt still compare equal to their template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.Message == t.Message || errors.Is(e.Err, t)
}

// Fmt returns a copy of the error with its message placeholders filled
// in. The original error is kept as the cause so errors.Is still
// matches the template.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Err:     e,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap attaches a cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Err:     err,
		Message: e.Message,
	}
}
