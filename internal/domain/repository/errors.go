package repository

import "errors"

// Sentinel errors returned by repository implementations. Constraint
// violations are translated into these at the store boundary so callers
// never see driver-specific error types.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
