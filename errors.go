package tracego

import (
	"errors"

	"github.com/hupe1980/tracego/search"
)

var (
	// ErrNoPairs is returned by TraceAll when no start/goal pairs are given.
	ErrNoPairs = errors.New("tracego: no trace pairs given")
	// ErrInvalidSigma is returned when a non-positive or non-finite tubeness
	// scale is requested.
	ErrInvalidSigma = errors.New("tracego: tubeness sigma must be finite and positive")
)

// Re-exported engine sentinels, so facade callers can match validation
// failures without importing the search package.
var (
	ErrNilVolume          = search.ErrNilVolume
	ErrNilCost            = search.ErrNilCost
	ErrNilHeuristic       = search.ErrNilHeuristic
	ErrInvalidCalibration = search.ErrInvalidCalibration
)
