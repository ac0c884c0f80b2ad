package internalerr

import "errors"

// Sentinel errors for the edges of the interpreter (config, stores, CLI).
// The interpret path itself never fails.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
)
