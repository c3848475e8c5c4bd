/*
Package simplicial implements weighted interpolation and extrapolation of
scattered samples over a simplicial complex.

Each sample vertex gets an affine basis function, the mean of the linear fits
of every simplex incident to it. A query inside some simplex is evaluated by
recursively blending basis function values over the faces of that simplex,
each face weighted by the distance between successive projections of the query
point. A query outside every simplex is first projected onto the nearest
bounded face of the complex and blended over that face.
*/
package simplicial

import (
	"fmt"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/types"
)

// Simplex lists the indices of its vertices in the shared point array
type Simplex []int

/*
Complex is a set of D-simplices sharing one array of D-dimensional sample points. Adjacency is never stored; it is
implied by shared vertex indices. A Complex references the caller's slices and never writes to them.
*/
type Complex struct {
	Points    []geometry.Point
	Values    []float64 // One sample value per point, may be nil when basis functions are supplied directly
	Simplices []Simplex
	Dim       int
}

func NewComplex(points []geometry.Point, values []float64, simplices []Simplex) (c *Complex, err error) {
	if len(simplices) == 0 || len(points) == 0 {
		err = fmt.Errorf("%w: %d points, %d simplices", ErrEmptyComplex, len(points), len(simplices))
		return
	}
	var (
		D = len(points[0])
	)
	if D == 0 {
		err = fmt.Errorf("%w: points have no coordinates", ErrDimensionMismatch)
		return
	}
	for i, p := range points {
		if len(p) != D {
			err = fmt.Errorf("%w: point %d has dimension %d, expected %d", ErrDimensionMismatch, i, len(p), D)
			return
		}
	}
	if values != nil && len(values) != len(points) {
		err = fmt.Errorf("%w: %d values for %d points", ErrDimensionMismatch, len(values), len(points))
		return
	}
	seen := make(types.FaceSet, len(simplices))
	for s, sx := range simplices {
		if len(sx) != D+1 {
			err = fmt.Errorf("%w: simplex %d has %d vertices, dimension %d requires %d",
				ErrInvalidSimplex, s, len(sx), D, D+1)
			return
		}
		for j, v := range sx {
			if v < 0 || v >= len(points) {
				err = fmt.Errorf("%w: simplex %d references vertex %d, have %d points",
					ErrInvalidSimplex, s, v, len(points))
				return
			}
			for _, w := range sx[:j] {
				if w == v {
					err = fmt.Errorf("%w: simplex %d repeats vertex %d", ErrInvalidSimplex, s, v)
					return
				}
			}
		}
		if !seen.Add(sx) {
			err = fmt.Errorf("%w: simplex %d duplicates an earlier simplex", ErrInvalidSimplex, s)
			return
		}
	}
	c = &Complex{
		Points:    points,
		Values:    values,
		Simplices: simplices,
		Dim:       D,
	}
	return
}

func (c *Complex) facePoints(verts []int) (S []geometry.Point) {
	S = make([]geometry.Point, len(verts))
	for i, v := range verts {
		S[i] = c.Points[v]
	}
	return
}

// without returns a new slice holding verts minus the entry at i
func without(verts []int, i int) (sub []int) {
	sub = make([]int, 0, len(verts)-1)
	sub = append(sub, verts[:i]...)
	return append(sub, verts[i+1:]...)
}
