package puzzle

import "errors"

// ErrInvariant reports an internal-consistency fault in stack membership or order
var ErrInvariant = errors.New("puzzle invariant violated")

// ErrUnknownRing and ErrUnknownPole report out of range identifiers
var (
	ErrUnknownRing = errors.New("unknown ring")
	ErrUnknownPole = errors.New("unknown pole")
)
