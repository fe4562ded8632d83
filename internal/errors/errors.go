// Package errors defines sentinel errors used across multiple packages.
package errors

import (
	"errors"
	"strconv"
)

// ErrCapacityExceeded is returned by strict writes that do not fit in the space left in a ring.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrPatternMatched is returned when a watched command is stopped because its output matched the --until pattern.
var ErrPatternMatched = errors.New("pattern matched")

// ErrNoCommand is returned when run is invoked without a command to execute.
var ErrNoCommand = errors.New("no command given")

// CapacityError reports a strict write that asked for more space than the ring had left.
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return "capacity exceeded: requested " + strconv.Itoa(e.Requested) +
		", available " + strconv.Itoa(e.Available)
}

// Is makes errors.Is(err, ErrCapacityExceeded) match a *CapacityError.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
