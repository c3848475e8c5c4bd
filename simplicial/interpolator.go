package simplicial

import (
	"fmt"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/utils"
)

/*
Interpolator evaluates the simplicial weighted interpolant of a complex. It holds the complex and its basis
functions read-only after construction, so queries on one Interpolator may run concurrently.
*/
type Interpolator struct {
	complex    *Complex
	basis      []BasisFunction
	weight     WeightFunction
	solver     *utils.GaussSolver
	geom       *geometry.Geometry
	facetCache bool
}

func newInterpolator(c *Complex, weight WeightFunction, opts []Option) (ip *Interpolator, err error) {
	if c == nil {
		err = fmt.Errorf("%w: nil complex", ErrEmptyComplex)
		return
	}
	if weight == nil {
		err = fmt.Errorf("%w: no weight function", ErrInvalidWeight)
		return
	}
	ip = &Interpolator{
		complex: c,
		weight:  weight,
		solver:  utils.NewGaussSolver(),
	}
	for _, opt := range opts {
		opt(ip)
	}
	ip.geom = geometry.NewGeometry(ip.solver)
	return
}

// NewInterpolator builds the basis functions of c from its sample values.
func NewInterpolator(c *Complex, weight WeightFunction, opts ...Option) (ip *Interpolator, err error) {
	if ip, err = newInterpolator(c, weight, opts); err != nil {
		return nil, err
	}
	if ip.basis, err = c.BasisFunctions(ip.solver); err != nil {
		return nil, err
	}
	return
}

// NewInterpolatorWithBasis reuses previously built basis functions, one per point of c.
func NewInterpolatorWithBasis(c *Complex, basis []BasisFunction, weight WeightFunction,
	opts ...Option) (ip *Interpolator, err error) {
	if ip, err = newInterpolator(c, weight, opts); err != nil {
		return nil, err
	}
	if len(basis) != len(c.Points) {
		return nil, fmt.Errorf("%w: %d basis functions for %d points",
			ErrDimensionMismatch, len(basis), len(c.Points))
	}
	for i, bf := range basis {
		if len(bf.Coeffs) != c.Dim {
			return nil, fmt.Errorf("%w: basis function %d has %d coefficients, dimension is %d",
				ErrDimensionMismatch, i, len(bf.Coeffs), c.Dim)
		}
	}
	ip.basis = basis
	return
}

func (ip *Interpolator) Complex() *Complex { return ip.complex }

func (ip *Interpolator) Basis() []BasisFunction { return ip.basis }

func (ip *Interpolator) checkQuery(dot geometry.Point) (err error) {
	if len(dot) != ip.complex.Dim {
		err = fmt.Errorf("%w: query point has dimension %d, complex has %d",
			ErrDimensionMismatch, len(dot), ip.complex.Dim)
	}
	return
}

// Locate returns the first simplex, in complex order, containing dot with its coordinates, or -1 when none does.
func (ip *Interpolator) Locate(dot geometry.Point) (simplex int, coords []float64, err error) {
	if err = ip.checkQuery(dot); err != nil {
		return -1, nil, err
	}
	for s, sx := range ip.complex.Simplices {
		var inside bool
		if inside, coords, err = ip.geom.Contains(dot, ip.complex.facePoints(sx)); err != nil {
			return -1, nil, fmt.Errorf("simplex %d: %w", s, err)
		}
		if inside {
			return s, coords, nil
		}
	}
	return -1, nil, nil
}

// Interpolate blends over the first simplex containing dot, and extrapolates when no simplex contains it.
func (ip *Interpolator) Interpolate(dot geometry.Point) (val float64, err error) {
	var s int
	if s, _, err = ip.Locate(dot); err != nil {
		return
	}
	if s < 0 {
		return ip.Extrapolate(dot)
	}
	return ip.blend(dot, dot, ip.complex.Simplices[s])
}

// Extrapolate blends over the face nearest to dot, starting from the bounded projection of dot onto that face.
func (ip *Interpolator) Extrapolate(dot geometry.Point) (val float64, err error) {
	var f Facet
	if f, err = ip.NearestFacet(dot); err != nil {
		return
	}
	return ip.blend(dot, f.Projection, f.Vertices)
}

// EvaluateAll interpolates each of dots in turn, stopping at the first failure.
func (ip *Interpolator) EvaluateAll(dots []geometry.Point) (vals []float64, err error) {
	vals = make([]float64, len(dots))
	for i, dot := range dots {
		if vals[i], err = ip.Interpolate(dot); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}
	return
}

// Interpolate evaluates the interpolant at dot for a complex given by its points, simplices and basis functions.
func Interpolate(dot geometry.Point, points []geometry.Point, simplices []Simplex, basis []BasisFunction,
	weight WeightFunction) (val float64, err error) {
	var (
		c  *Complex
		ip *Interpolator
	)
	if c, err = NewComplex(points, nil, simplices); err != nil {
		if len(simplices) == 0 {
			err = fmt.Errorf("%w: %w", ErrExtrapolationFailed, err)
		}
		return
	}
	if ip, err = NewInterpolatorWithBasis(c, basis, weight); err != nil {
		return
	}
	return ip.Interpolate(dot)
}

// Contains reports whether point lies in simplex, a list of indices into points.
func Contains(point geometry.Point, points []geometry.Point, simplex Simplex) (inside bool, coords []float64,
	err error) {
	S := make([]geometry.Point, len(simplex))
	for i, v := range simplex {
		if v < 0 || v >= len(points) {
			err = fmt.Errorf("%w: vertex %d, have %d points", ErrInvalidSimplex, v, len(points))
			return
		}
		S[i] = points[v]
	}
	return geometry.NewGeometry(nil).Contains(point, S)
}
