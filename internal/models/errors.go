package models

import "errors"

// Custom errors
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrInvalidID           = errors.New("invalid ID format")
	ErrInvalidInput        = errors.New("invalid input")
	ErrProgramNameRequired = errors.New("program name is required")
)
