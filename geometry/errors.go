package geometry

import (
	"errors"

	"github.com/notargets/gosimplex/utils"
)

var (
	// ErrDimensionMismatch is shared with utils so a single errors.Is check
	// covers point and matrix size errors alike.
	ErrDimensionMismatch = utils.ErrDimensionMismatch

	// ErrDegenerateSimplex is returned for a simplex with too few points or
	// affinely dependent points.
	ErrDegenerateSimplex = errors.New("geometry: degenerate simplex")
)
