package simplicial

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/utils"
	"gonum.org/v1/gonum/mat"
)

// BasisFunction is the affine map p -> Σ Coeffs[j]·p[j] + Constant
type BasisFunction struct {
	Coeffs   []float64
	Constant float64
}

func (bf BasisFunction) Evaluate(p geometry.Point) (val float64) {
	val = bf.Constant
	for j, c := range bf.Coeffs {
		val += c * p[j]
	}
	return
}

// BuildBasisFunctions builds one basis function per point with a default strict solver.
func BuildBasisFunctions(points []geometry.Point, values []float64, simplices []Simplex) (bfs []BasisFunction, err error) {
	var c *Complex
	if c, err = NewComplex(points, values, simplices); err != nil {
		return
	}
	return c.BasisFunctions(utils.NewGaussSolver())
}

/*
BasisFunctions fits, for each simplex, the affine function matching the sample values at its D+1 vertices, then
gives every vertex the arithmetic mean of the fits of the simplices incident to it.

With L the S x (D+1) matrix of per-simplex fit coefficients and I the S x V vertex incidence matrix, the per-vertex
coefficient sums are I^T·L and the incidence counts are the column sums of I.
*/
func (c *Complex) BasisFunctions(solver *utils.GaussSolver) (bfs []BasisFunction, err error) {
	if c.Values == nil {
		err = fmt.Errorf("%w: no sample values to fit", ErrDimensionMismatch)
		return
	}
	var (
		D         = c.Dim
		NS        = len(c.Simplices)
		NV        = len(c.Points)
		linears   = utils.NewMatrix(NS, D+1)
		incidence = sparse.NewDOK(NS, NV)
		A         = utils.NewMatrix(D+1, D+1)
		B         = make([]float64, D+1)
	)
	for s, sx := range c.Simplices {
		for j, v := range sx {
			for k := 0; k < D; k++ {
				A.Set(j, k, c.Points[v][k])
			}
			A.Set(j, D, 1)
			B[j] = c.Values[v]
			incidence.Set(s, v, 1)
		}
		var coeffs []float64
		if coeffs, err = solver.Solve(A, B); err != nil {
			err = fmt.Errorf("linear fit of simplex %d: %w", s, err)
			return
		}
		linears.SetRow(s, coeffs)
	}
	linears.SetReadOnly("SimplexLinears")
	var (
		inc    = incidence.ToCSR()
		counts = mat.NewVecDense(NV, nil)
		sums   = mat.NewDense(NV, D+1, nil)
	)
	counts.MulVec(inc.T(), mat.NewVecDense(NS, utils.ConstArray(NS, 1)))
	sums.Mul(inc.T(), linears.M)
	bfs = make([]BasisFunction, NV)
	for v := 0; v < NV; v++ {
		n := counts.AtVec(v)
		if n == 0 {
			err = fmt.Errorf("%w: vertex %d", ErrUncoveredVertex, v)
			return nil, err
		}
		row := sums.RawRowView(v)
		bf := BasisFunction{Coeffs: make([]float64, D)}
		for k := 0; k < D; k++ {
			bf.Coeffs[k] = row[k] / n
		}
		bf.Constant = row[D] / n
		bfs[v] = bf
	}
	return
}
