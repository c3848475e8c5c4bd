package simplicial

import (
	"errors"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/utils"
)

// Lower level sentinels are re-exported so callers can match every failure
// of this package with a single import.
var (
	ErrDimensionMismatch = utils.ErrDimensionMismatch
	ErrDegenerateSystem  = utils.ErrDegenerateSystem
	ErrDegenerateSimplex = geometry.ErrDegenerateSimplex
)

var (
	// ErrEmptyComplex is returned when no simplices (or no points) are supplied.
	ErrEmptyComplex = errors.New("simplicial: empty complex")

	// ErrInvalidSimplex covers a simplex with the wrong number of vertices, an
	// out of range or repeated vertex index, or a simplex listed twice.
	ErrInvalidSimplex = errors.New("simplicial: invalid simplex")

	// ErrUncoveredVertex is returned by basis construction for a vertex that no
	// simplex references.
	ErrUncoveredVertex = errors.New("simplicial: vertex not referenced by any simplex")

	// ErrExtrapolationFailed is returned when no face of the complex has a
	// valid bounded projection of the query point.
	ErrExtrapolationFailed = errors.New("simplicial: extrapolation failed")

	// ErrInvalidWeight is returned when a weight function yields NaN or a
	// non-positive weight, or when no weight function is supplied.
	ErrInvalidWeight = errors.New("simplicial: invalid weight")
)
