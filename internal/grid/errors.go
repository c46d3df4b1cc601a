package grid

import "errors"

var (
	// ErrMalformedTier indicates a tier of the wrong shape.
	ErrMalformedTier = errors.New("grid: malformed tier")
	// ErrTierSize indicates value lists of inconsistent length within a tier.
	ErrTierSize = errors.New("grid: inconsistent tier size")
)
