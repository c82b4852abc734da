package core

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrEmptyClaim = errors.New("claim text is empty")

	// Backend errors
	ErrMalformedResponse = errors.New("malformed analysis response")
)
