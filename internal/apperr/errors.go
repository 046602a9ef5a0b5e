package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrForbidden indicates that the actor lacks the role or eligibility for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrCredentialMismatch indicates a wrong one-time code.
var ErrCredentialMismatch = errors.New("credential mismatch")

// ErrUnauthenticated indicates a missing or unusable bearer credential.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrTooManyAttempts indicates that verification attempts for a key are exhausted.
var ErrTooManyAttempts = errors.New("too many attempts")

// StateConflictError is a lifecycle precondition violation.
// It matches ErrConflict under errors.Is.
type StateConflictError struct {
	Expected string
	Actual   string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("state conflict: expected %s, actual %s", e.Expected, e.Actual)
}

// Unwrap lets errors.Is(err, ErrConflict) succeed.
func (e *StateConflictError) Unwrap() error { return ErrConflict }

// StateConflict builds a StateConflictError.
func StateConflict[S ~string](expected string, actual S) error {
	return &StateConflictError{Expected: expected, Actual: string(actual)}
}

// Invalid wraps ErrInvalid with a field-level reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, reason)
}
