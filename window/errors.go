package window

import "errors"

// Sentinel errors for bounds computation.
// Every calculator validates its arguments up front and fails with one of
// these before touching the index; there is never a partial result.
var (
	// ErrWindowSize indicates a negative window size.
	ErrWindowSize = errors.New("window: size must be non-negative")
	// ErrStepSize indicates a non-positive step.
	ErrStepSize = errors.New("window: step must be positive")
	// ErrMinPeriods indicates a negative minimum period count.
	ErrMinPeriods = errors.New("window: min periods must be non-negative")
	// ErrClosed indicates an unrecognized closed-interval token.
	ErrClosed = errors.New("window: closed must be one of left, right, both, neither")
	// ErrLength indicates a negative sequence length.
	ErrLength = errors.New("window: length must be non-negative")
)
