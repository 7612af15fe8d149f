package domain

import "errors"

// Sentinel errors returned by the core services. The API layer maps each one
// to a fixed HTTP status; anything else surfaces as a 500.
var (
	// ErrValidation covers missing or blank required input.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden means the caller is authenticated but lacks the privilege
	// for the attempted operation.
	ErrForbidden = errors.New("access forbidden")

	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
)
