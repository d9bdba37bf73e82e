package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors raised at the repository boundary. Services match them with
// errors.Is and map them onto catalog errors; they never cross the service
// boundary.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUserName indicates the username is already taken by another user.
	ErrDuplicateUserName = errors.New("duplicate username")

	// ErrDuplicateEmail indicates the email address is already in use by another user.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrDuplicatePhoneNumber indicates the phone number is already associated with another user.
	ErrDuplicatePhoneNumber = errors.New("duplicate phone number")

	// ErrUserUpdateFailed indicates a field update step inside the user update
	// transaction did not apply.
	ErrUserUpdateFailed = errors.New("user update failed")

	// ErrUserCreationFailed indicates the underlying insert for a new user failed.
	ErrUserCreationFailed = errors.New("user creation failed")
)

// Kind classifies an Error for callers that map errors onto transport
// responses or field-level UI messages.
type Kind int

const (
	KindFailure Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindProblem
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindProblem:
		return "problem"
	default:
		return "failure"
	}
}

// Violation is a single field-level validation failure.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is the typed error returned by every service method. Code is stable
// and usable for field-specific message mapping by callers; Message is the
// human-readable fallback.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Kind       Kind        `json:"kind"`
	Violations []Violation `json:"violations,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(msgs, "; "))
}

// Is makes catalog errors comparable with errors.Is by stable code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewFailure creates an opaque infrastructure/unexpected error.
func NewFailure(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindFailure}
}

// NewNotFound creates a missing-resource error.
func NewNotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindNotFound}
}

// NewConflict creates a uniqueness or business-rule conflict error.
func NewConflict(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindConflict}
}

// NewProblem creates a malformed/unsupported-input-shape error, distinct from
// field validation.
func NewProblem(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindProblem}
}

// NewValidation aggregates field violations into a single Validation-kind
// error. Violation order is preserved.
func NewValidation(violations ...Violation) *Error {
	return &Error{
		Code:       "Validation.Failed",
		Message:    "One or more validation errors occurred.",
		Kind:       KindValidation,
		Violations: violations,
	}
}

// FromError returns err's *Error when it is one, otherwise the fallback.
// Handlers use it to keep unexpected errors behind a stable code.
func FromError(err error, fallback *Error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return fallback
}
