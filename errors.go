package odex

import "errors"

// Sentinel errors returned by the core. Divergence in the state
// values themselves (NaN/Inf) is not one of these; that is for the
// observer to detect.
var (
	// ErrNoConfig indicates the requested (order, cores) pair has no
	// entry in the extrapolation scheme table.
	ErrNoConfig = errors.New("odex: no extrapolation scheme for this (order, cores) pair")

	// ErrBadSize indicates a State produced mid-integration changed
	// size/shape relative to the initial state. [Extrapolator.Step]
	// checks for this on every step when the State is slice-shaped; it
	// is a debug-only convenience and only catches the slice case, not
	// every possible State implementation.
	ErrBadSize = errors.New("odex: state size changed during integration")
)
