package session

import "errors"

// Validation errors raised before any network call is attempted.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
)
