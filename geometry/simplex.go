package geometry

import (
	"fmt"

	"github.com/notargets/gosimplex/utils"
	"gonum.org/v1/gonum/floats"
)

// Geometry performs simplex projections and containment tests, solving its
// linear systems with the configured GaussSolver.
type Geometry struct {
	Solver *utils.GaussSolver
}

func NewGeometry(solver *utils.GaussSolver) *Geometry {
	if solver == nil {
		solver = utils.NewGaussSolver()
	}
	return &Geometry{Solver: solver}
}

func checkSimplex(p Point, S []Point) (err error) {
	if len(S) == 0 {
		return fmt.Errorf("%w: simplex has no points", ErrDegenerateSimplex)
	}
	for _, s := range S {
		if err = checkDims(p, s); err != nil {
			return
		}
	}
	return
}

/*
affineCoords finds the coefficients k of the orthogonal projection of p onto the affine hull of S,

	prj = S[0] + Σ k[i]·(S[i+1] - S[0])

by solving the normal equations built from the Gram matrix of the edge vectors leaving S[0].
S must hold at least two points.
*/
func (g *Geometry) affineCoords(p Point, S []Point) (k []float64, edges []Point, err error) {
	var (
		N  = len(S) - 1
		a0 = sub(p, S[0])
	)
	edges = make([]Point, N)
	for i := range edges {
		edges[i] = sub(S[i+1], S[0])
	}
	if N == 1 {
		Ei := floats.Dot(edges[0], edges[0])
		if Ei == 0 {
			err = fmt.Errorf("%w: segment end points coincide", ErrDegenerateSimplex)
			return
		}
		k = []float64{floats.Dot(a0, edges[0]) / Ei}
		return
	}
	var (
		A = utils.NewMatrix(N, N)
		B = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			A.Set(i, j, floats.Dot(edges[j], edges[i]))
		}
		B[i] = floats.Dot(a0, edges[i])
	}
	if k, err = g.Solver.Solve(A, B); err != nil {
		err = fmt.Errorf("%w: %w", ErrDegenerateSimplex, err)
	}
	return
}

func combine(origin Point, k []float64, edges []Point) (prj Point) {
	prj = origin.Copy()
	for i, e := range edges {
		floats.AddScaled(prj, k[i], e)
	}
	return
}

// Project returns the orthogonal projection of p onto the affine hull of S.
func (g *Geometry) Project(p Point, S []Point) (prj Point, err error) {
	if err = checkSimplex(p, S); err != nil {
		return
	}
	if len(S) == 1 {
		return S[0].Copy(), nil
	}
	var (
		k     []float64
		edges []Point
	)
	if k, edges, err = g.affineCoords(p, S); err != nil {
		return
	}
	return combine(S[0], k, edges), nil
}

/*
ProjectBounded is Project restricted to the inner space of the simplex. When the projection lands outside the
bounded face, that is when any coefficient leaves [0,1] or their sum does, ok is false and prj is nil.
A single point is its own bounded projection.
*/
func (g *Geometry) ProjectBounded(p Point, S []Point) (prj Point, ok bool, err error) {
	if err = checkSimplex(p, S); err != nil {
		return
	}
	if len(S) == 1 {
		return S[0].Copy(), true, nil
	}
	var (
		k     []float64
		edges []Point
	)
	if k, edges, err = g.affineCoords(p, S); err != nil {
		return
	}
	if !inUnitSimplex(k) {
		return nil, false, nil
	}
	return combine(S[0], k, edges), true, nil
}

// ProjectBoundedOr returns fallback in place of a projection outside the bounded face.
func (g *Geometry) ProjectBoundedOr(p Point, S []Point, fallback Point) (prj Point, err error) {
	var ok bool
	if prj, ok, err = g.ProjectBounded(p, S); err != nil {
		return
	}
	if !ok {
		prj = fallback
	}
	return
}

/*
Contains reports whether p lies within the D-simplex S, where D is the dimension of p and S holds D+1 points.
The returned coordinates are relative to S[0] and the edges S[i]-S[0]; p is inside when each is in [0,1] and so is
their sum.
*/
func (g *Geometry) Contains(p Point, S []Point) (inside bool, coords []float64, err error) {
	var (
		D = len(p)
	)
	if len(S) != D+1 {
		err = fmt.Errorf("%w: need %d points for dimension %d, have %d",
			ErrDegenerateSimplex, D+1, D, len(S))
		return
	}
	if err = checkSimplex(p, S); err != nil {
		return
	}
	var (
		A = utils.NewMatrix(D, D)
		B = sub(p, S[0])
	)
	for i := 1; i <= D; i++ {
		for j := 0; j < D; j++ {
			A.Set(j, i-1, S[i][j]-S[0][j])
		}
	}
	if coords, err = g.Solver.Solve(A, B); err != nil {
		err = fmt.Errorf("%w: %w", ErrDegenerateSimplex, err)
		return
	}
	inside = inUnitSimplex(coords)
	return
}

func inUnitSimplex(k []float64) bool {
	var sum float64
	for _, ki := range k {
		if !(ki >= 0 && ki <= 1) {
			return false
		}
		sum += ki
	}
	return sum >= 0 && sum <= 1
}
