package armsway

import "errors"

var (
	// ErrNilHost is returned when no host is supplied.
	ErrNilHost = errors.New("armsway: host required")

	// ErrChainTooShort is returned when a chain has fewer nodes than the
	// readout needs (4 for sway, 6 for wobble).
	ErrChainTooShort = errors.New("armsway: chain too short")

	// ErrMultiplier is returned for a non-finite chest multiplier.
	ErrMultiplier = errors.New("armsway: multiplier must be finite")
)
