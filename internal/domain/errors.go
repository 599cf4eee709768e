package domain

import "errors"

// Validation errors
var (
	ErrValidation = errors.New("validation failed")
)

// Lookup errors shared across repositories
var (
	ErrNotFound = errors.New("record not found")
)
