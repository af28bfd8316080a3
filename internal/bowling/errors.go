package bowling

import "errors"

// Error kinds returned by the engine. Every error wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrValidation reports a pin count outside the accepted range.
	ErrValidation = errors.New("invalid pin count")

	// ErrRule reports a ball or bonus that breaks the scoring rules.
	ErrRule = errors.New("scoring rule violated")

	// ErrCapacity reports a full roster.
	ErrCapacity = errors.New("match is full")

	// ErrDuplicate reports a player name that is already seated.
	ErrDuplicate = errors.New("duplicate player")

	// ErrState reports an action that is not allowed in the current state.
	ErrState = errors.New("invalid state")

	// ErrUnknownPlayer reports a lookup for a player who is not in the match.
	ErrUnknownPlayer = errors.New("unknown player")
)
