// Package common defines sentinel errors shared by the user map and its
// supporting packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Insert errors.
	ErrorAlreadyExists = errors.New("already exists")

	// Password update errors.
	ErrorAuthentication = errors.New("incorrect password")

	// Table construction errors.
	ErrorInvalidOption = errors.New("invalid option value")
)
