package domain

import "errors"

var (
	// ErrNotAuthenticated is returned by local guards before any network
	// call when an operation requires a token and none is configured.
	ErrNotAuthenticated = errors.New("not logged in, run `lic login` first")

	// ErrValidation marks malformed local input caught before any network
	// call.
	ErrValidation = errors.New("invalid input")
)
