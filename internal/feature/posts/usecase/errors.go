// Package usecase implements the business logic for the posts feature,
// including the authorization policy applied to every action.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or out of bounds.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPostNotFound is returned when the referenced post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrUnauthenticated is returned when an action requires a logged-in
	// identity and none was resolved.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the acting identity does not own the
	// target post. It is only returned for posts that exist.
	ErrForbidden = errors.New("forbidden")
)
