package raster

import "errors"

// Package errors for the fallible BitPlane constructors.
var (
	// ErrInvalidDimensions is returned when CreateErr is called with a
	// width or height that is zero after sign-normalisation.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
)
