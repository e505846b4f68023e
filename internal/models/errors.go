package models

import "errors"

// Prediction errors. The prediction core never returns these to callers; they
// classify skipped input and degenerate results for logging and outer layers.
var (
	ErrMalformedOdds        = errors.New("malformed odds")
	ErrNoUsableData         = errors.New("no usable data")
	ErrArithmeticDegenerate = errors.New("degenerate arithmetic")
	ErrInvalidRequest       = errors.New("invalid request")
)
