// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or out of bounds.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
