package service

import "errors"

// Common service errors
var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases share one error so a
	// caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyUpdate is returned when a task update contains no fields.
	ErrEmptyUpdate = errors.New("update must include at least one field")
)
