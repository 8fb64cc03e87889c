// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUsernameTaken is returned when signup collides with an existing
	// username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned on any failed authentication; it
	// never reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
