// Package common defines shared constants and sentinel errors used across
// the plateful client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Session errors.
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrInvalidToken = errors.New("invalid token")

	// Local validation errors (raised before any network call). The texts
	// are shown to the user verbatim.
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Workflow errors.
	ErrSendInFlight = errors.New("a send is already in progress")
)
