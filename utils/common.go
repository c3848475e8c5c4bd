package utils

const (
	// PIVOTTOL is the default pivot tolerance, relative to the largest
	// magnitude entry of the system matrix.
	PIVOTTOL = 1.e-12
	// PIVOTEPS replaces a zero pivot when a solver runs in permissive mode.
	PIVOTEPS = 1.e-6
)
