package domain

import "errors"

// ErrValidation is the root of every domain validation failure.
// ValidationError wraps it so callers can detect the whole class with a
// single errors.Is check.
var ErrValidation = errors.New("validation failed")
