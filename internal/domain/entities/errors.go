package entities

import "errors"

// Domain errors
var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrInvalidSentiment    = errors.New("invalid sentiment")
	ErrInvalidRecord       = errors.New("invalid interaction record")
)
