package utils

import "errors"

var (
	// ErrDimensionMismatch is returned when vector, point or matrix sizes are
	// inconsistent with each other.
	ErrDimensionMismatch = errors.New("utils: dimension mismatch")

	// ErrDegenerateSystem is returned by a strict GaussSolver when a pivot
	// falls within tolerance of zero.
	ErrDegenerateSystem = errors.New("utils: degenerate linear system")
)
