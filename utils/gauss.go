package utils

import (
	"fmt"
	"math"
)

/*
GaussSolver solves the small dense systems A·X = B produced by simplex
projections and per-simplex linear fits, using forward elimination and back
substitution.

In strict mode (the default) a pivot whose magnitude is within Tolerance of
zero, relative to the largest entry of A, fails with ErrDegenerateSystem. In
permissive mode such a pivot is replaced by Epsilon and the elimination
carries on, which always yields an answer but not necessarily a meaningful one.
*/
type GaussSolver struct {
	Tolerance  float64
	Epsilon    float64
	Permissive bool
	Pivoting   bool // partial (row) pivoting
}

type SolverOption func(gs *GaussSolver)

func WithTolerance(tol float64) SolverOption {
	if tol < 0 || math.IsNaN(tol) {
		panic(fmt.Errorf("solver tolerance must be non-negative, have %v", tol))
	}
	return func(gs *GaussSolver) { gs.Tolerance = tol }
}

// WithPermissive substitutes eps for zero pivots instead of failing.
func WithPermissive(eps float64) SolverOption {
	if eps == 0 || math.IsNaN(eps) {
		panic(fmt.Errorf("permissive pivot substitute must be non-zero, have %v", eps))
	}
	return func(gs *GaussSolver) {
		gs.Permissive = true
		gs.Epsilon = eps
	}
}

// WithoutPivoting eliminates rows strictly in their given order.
func WithoutPivoting() SolverOption {
	return func(gs *GaussSolver) { gs.Pivoting = false }
}

func NewGaussSolver(opts ...SolverOption) (gs *GaussSolver) {
	gs = &GaussSolver{
		Tolerance: PIVOTTOL,
		Epsilon:   PIVOTEPS,
		Pivoting:  true,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return
}

// SolveLinear solves A·X = B with a default strict solver. A is given row by row.
func SolveLinear(A [][]float64, B []float64) (X []float64, err error) {
	var m Matrix
	if m, err = NewMatrixFromRows(A); err != nil {
		return
	}
	return NewGaussSolver().Solve(m, B)
}

// Solve does not modify A or B.
func (gs *GaussSolver) Solve(A Matrix, B []float64) (X []float64, err error) {
	var (
		nr, nc = A.Dims()
		N      = nr
	)
	if nr != nc || len(B) != nr {
		err = fmt.Errorf("%w: system matrix is %dx%d with %d right hand side values",
			ErrDimensionMismatch, nr, nc, len(B))
		return
	}
	if N == 0 {
		return []float64{}, nil
	}
	var (
		gA        = A.Copy()
		gB        = make([]float64, N)
		threshold = gs.Tolerance * A.MaxAbs()
	)
	copy(gB, B)
	for j := 0; j < N; j++ {
		if gs.Pivoting {
			p := j
			for i := j + 1; i < N; i++ {
				if math.Abs(gA.M.At(i, j)) > math.Abs(gA.M.At(p, j)) {
					p = i
				}
			}
			if p != j {
				gA.SwapRows(p, j)
				gB[p], gB[j] = gB[j], gB[p]
			}
		}
		rowJ := gA.M.RawRowView(j)
		if math.Abs(rowJ[j]) <= threshold {
			if !gs.Permissive {
				err = fmt.Errorf("%w: pivot %d is %g, tolerance %g",
					ErrDegenerateSystem, j, rowJ[j], threshold)
				return
			}
			rowJ[j] = gs.Epsilon
		}
		for i := j + 1; i < N; i++ {
			rowI := gA.M.RawRowView(i)
			r := rowI[j] / rowJ[j]
			if r == 0 {
				continue
			}
			rowI[j] = 0
			for k := j + 1; k < N; k++ {
				rowI[k] -= rowJ[k] * r
			}
			gB[i] -= gB[j] * r
		}
	}
	X = make([]float64, N)
	for i := N - 1; i >= 0; i-- {
		var (
			rowI = gA.M.RawRowView(i)
			s    = gB[i]
		)
		for k := i + 1; k < N; k++ {
			s -= rowI[k] * X[k]
		}
		X[i] = s / rowI[i]
	}
	return
}
