package rubiks

import "errors"

// Sentinel errors for the rubiks package.
var (
	// Notation errors
	ErrInvalidNotation = errors.New("rubiks: invalid move notation")

	// State encoding errors
	ErrInvalidState    = errors.New("rubiks: invalid state encoding")
	ErrIncompleteState = errors.New("rubiks: cube state is incomplete")
)
