package simplicial

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/utils"
)

/*
WeightFunction maps a non-negative squared distance to a strictly positive weight and should decrease with
distance. A weight of +Inf marks an exact hit: the blender then ignores every finite weighted branch, which is what
makes interpolation exact at the sample vertices.
*/
type WeightFunction func(distanceSquared float64) (weight float64)

// InverseDistance weights by 1/d², returning +Inf at d = 0
func InverseDistance() WeightFunction {
	return func(d2 float64) float64 {
		if d2 == 0 {
			return math.Inf(1)
		}
		return 1. / d2
	}
}

// InverseDistanceWithFallback weights by 1/d², returning the finite weight w0 at d = 0
func InverseDistanceWithFallback(w0 float64) WeightFunction {
	if !(w0 > 0) {
		panic(fmt.Errorf("fallback weight must be positive, have %v", w0))
	}
	return func(d2 float64) float64 {
		if d2 == 0 {
			return w0
		}
		return 1. / d2
	}
}

// InversePower weights by 1/(d²)^p, returning +Inf at d = 0
func InversePower(p int) WeightFunction {
	if p < 1 {
		panic(fmt.Errorf("inverse power must be at least 1, have %d", p))
	}
	return func(d2 float64) float64 {
		if d2 == 0 {
			return math.Inf(1)
		}
		return utils.POW(d2, -p)
	}
}
