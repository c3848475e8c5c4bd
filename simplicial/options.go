package simplicial

import (
	"github.com/notargets/gosimplex/utils"
)

type Option func(ip *Interpolator)

// WithSolver sets the linear solver used for basis fits, projections and containment tests.
func WithSolver(solver *utils.GaussSolver) Option {
	return func(ip *Interpolator) {
		if solver != nil {
			ip.solver = solver
		}
	}
}

// WithFacetCache projects each face shared by several simplices only once per extrapolated query.
func WithFacetCache() Option {
	return func(ip *Interpolator) { ip.facetCache = true }
}
