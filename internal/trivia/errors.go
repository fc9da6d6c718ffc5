package trivia

import "errors"

// Error kinds returned by Service operations. The HTTP layer maps these to
// status codes; anything else is a store failure and surfaces as a 500.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("invalid input")
)
