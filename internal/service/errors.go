package service

import "errors"

// Error kinds returned by the auth flows. Compare with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateInFlight  = errors.New("duplicate request in flight")
	ErrEmailExists        = errors.New("email exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStore              = errors.New("store error")
)

// Error is the structured failure of a flow. Message is safe to show to a
// client; the cause is kept for logs only.
type Error struct {
	Kind    error
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.cause
}

func validationError(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func storeError(msg string, cause error) *Error {
	return &Error{Kind: ErrStore, Message: msg, cause: cause}
}

var (
	errDuplicateInFlight = &Error{
		Kind:    ErrDuplicateInFlight,
		Message: "registration request already in progress",
	}
	errEmailExists = &Error{
		Kind:    ErrEmailExists,
		Message: "an account with this email already exists",
	}
	errInvalidCredentials = &Error{
		Kind:    ErrInvalidCredentials,
		Message: "invalid email or password",
	}
)
