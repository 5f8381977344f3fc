package program

import "errors"

var (
	ErrMissingName = errors.New("missing name")
	ErrNoCycles    = errors.New("no cycles defined")
	ErrNoSets      = errors.New("no sets defined")
	ErrBadPercent  = errors.New("percent must be positive")
	ErrBadReps     = errors.New("reps must be positive")
	ErrBadSetCount = errors.New("set count must not be negative")
)
