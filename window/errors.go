package window

import "errors"

var (
	// ErrWindowSize indicates a window below the operation's minimum
	// (1 for MovSum, 2 for MovingRank) or larger than the axis length.
	ErrWindowSize = errors.New("window: window size out of range")

	// ErrSkipRange indicates a skip offset outside [0, axis length].
	ErrSkipRange = errors.New("window: skip out of range")
)
