package service

import "errors"

// Sentinel errors discriminating the three service error kinds. Callers use
// errors.Is against these; the message shown to users lives on the Error
// value wrapping them.
var (
	// ErrBadParameter indicates caller-supplied input that failed to parse or
	// failed semantic validation. Detected locally, before any persistence
	// call for that input. API layer should map this to HTTP 400.
	ErrBadParameter = errors.New("bad parameter")

	// ErrClientNotFound indicates a failed existence or non-emptiness
	// precondition. Also covers "account not found" and "no accounts matched
	// the filter", mirroring the single not-found kind the transport layer
	// consumes. API layer should map this to HTTP 404.
	ErrClientNotFound = errors.New("client not found")

	// ErrDatabaseFailure indicates the persistence layer reported an
	// I/O-level error. The underlying message is preserved on the wrapping
	// Error value. API layer should map this to HTTP 500.
	ErrDatabaseFailure = errors.New("database failure")
)

// Error is the concrete error value returned by the services. It pairs one of
// the sentinel kinds with the human-readable message the transport layer
// surfaces verbatim in the response body.
type Error struct {
	Kind    error  // one of ErrBadParameter, ErrClientNotFound, ErrDatabaseFailure
	Message string // constructed at the point of detection
}

// Error implements the error interface. It returns only the message; the
// kind is carried for errors.Is discrimination, not for display.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the sentinel kind to support errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewBadParameterError builds an ErrBadParameter-kinded error with the given
// user-facing message.
func NewBadParameterError(message string) *Error {
	return &Error{Kind: ErrBadParameter, Message: message}
}

// NewClientNotFoundError builds an ErrClientNotFound-kinded error with the
// given user-facing message.
func NewClientNotFoundError(message string) *Error {
	return &Error{Kind: ErrClientNotFound, Message: message}
}

// NewDatabaseFailureError builds an ErrDatabaseFailure-kinded error whose
// message is the underlying store error's text, preserved intact.
func NewDatabaseFailureError(err error) *Error {
	return &Error{Kind: ErrDatabaseFailure, Message: err.Error()}
}
