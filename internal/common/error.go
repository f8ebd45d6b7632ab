// Package common defines shared constants and sentinel errors used across
// the devprofiler layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid email or password")

	// Input errors.
	ErrorValidation = errors.New("validation error")
	ErrorConflict   = errors.New("already exists")
)
