package models

import "errors"

var (
	// auth business rules
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("missing required fields")

	// token verification
	ErrInvalidToken = errors.New("invalid token")

	// stale references
	ErrUserNotFound = errors.New("user not found")

	// upstream model faults
	ErrCompletionFailed     = errors.New("completion failed")
	ErrMalformedModelOutput = errors.New("malformed model output")
)
