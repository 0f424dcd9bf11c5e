// Package simerr defines the simulator's typed error vocabulary (spec §7).
//
// Validation errors (InvalidSeed, UnsupportedGameType, and an EmptyRoster
// that leaves a required position with zero fallback candidates) surface
// to the caller before the game loop starts. InvariantViolation marks an
// engine bug rather than bad input; the engine wraps it in errInvariant but
// runs no invariant checks, so Simulate does not return it. WeightedChoiceError
// is returned by internal/rng and is always a caller bug (an empty or
// non-positive-weight option set), never a runtime data condition, since
// every call site in this repo builds its options from fixed positive
// weights or player ratings.
package simerr

import "errors"

var (
	ErrInvalidSeed         = errors.New("invalid seed")
	ErrEmptyRoster         = errors.New("empty roster")
	ErrWeightedChoice      = errors.New("weighted choice")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrUnsupportedGameType = errors.New("unsupported game type")
)
