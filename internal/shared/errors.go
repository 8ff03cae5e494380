// Package shared provides sentinel errors and small helpers used across
// notekeeper components.
package shared

import "errors"

var (
	// ErrorValidation is returned when a required field is empty after trimming.
	ErrorValidation = errors.New("validation error")

	// ErrorDuplicateUsername is returned when registering a username that is
	// already taken (exact, case-sensitive match).
	ErrorDuplicateUsername = errors.New("username already exists")

	// ErrorAuthentication is returned for both an unknown username and a wrong
	// password; callers cannot tell the two apart.
	ErrorAuthentication = errors.New("invalid username/password")

	// ErrorNotFound is returned when operating on a note id that is absent from
	// the account's collection.
	ErrorNotFound = errors.New("not found")

	// ErrorStorageFault tags I/O failures of the underlying store. Write faults
	// surface it to the caller; read faults degrade to empty/default state.
	ErrorStorageFault = errors.New("storage fault")
)
