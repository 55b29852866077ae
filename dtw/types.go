package dtw

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrBadWindow indicates Window < -1.
	ErrBadWindow = errors.New("dtw: window must be -1 (unconstrained) or >= 0")

	// ErrBadPenalty indicates a negative or NaN SlopePenalty.
	ErrBadPenalty = errors.New("dtw: slope penalty must be a non-negative number")
)

// Options configures Distance and Path.
//
//   - Window:       Sakoe-Chiba band half-width; -1 disables the band.
//     With a band narrower than |len(a)-len(b)| no alignment exists and the
//     distance is +Inf.
//   - SlopePenalty: cost added to every insertion/deletion step.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, unpenalized configuration.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0}
}

// Coord is one aligned pair (I indexes a, J indexes b).
type Coord struct {
	I, J int
}
