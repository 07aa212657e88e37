package model

import "errors"

// Common errors used across the application
var (
	// Round type errors
	ErrRoundTypeNotFound = errors.New("round type not found")

	// Definition errors
	ErrInvalidDefinition   = errors.New("invalid round type definition")
	ErrDefinitionsNotFound = errors.New("no round type definitions stored")
)
