package session

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownWorkout reports a workout-type code outside the dispatch table.
	ErrUnknownWorkout = errors.New("unsupported workout type")

	// ErrFieldCount reports a sensor package whose field count does not match
	// the target variant's constructor.
	ErrFieldCount = errors.New("wrong sensor field count")
)
