/*
Package geometry provides the point arithmetic and simplex geometry used by the
simplicial interpolator: projections onto the affine hull or the bounded inner
space of a simplex, and barycentric containment tests.
*/
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point is an ordered tuple of D coordinates
type Point []float64

func NewPoint(coords ...float64) (p Point) {
	p = make(Point, len(coords))
	copy(p, coords)
	return
}

func (p Point) Dim() int { return len(p) }

func (p Point) Copy() (r Point) {
	r = make(Point, len(p))
	copy(r, p)
	return
}

func checkDims(a, b Point) (err error) {
	if len(a) != len(b) {
		err = fmt.Errorf("%w: points of dimension %d and %d", ErrDimensionMismatch, len(a), len(b))
	}
	return
}

func Add(a, b Point) (r Point, err error) {
	if err = checkDims(a, b); err != nil {
		return
	}
	r = make(Point, len(a))
	floats.AddTo(r, a, b)
	return
}

func Sub(a, b Point) (r Point, err error) {
	if err = checkDims(a, b); err != nil {
		return
	}
	return sub(a, b), nil
}

// LengthSquared returns |a|^2
func LengthSquared(a Point) float64 {
	return floats.Dot(a, a)
}

func Scale(s float64, a Point) (r Point) {
	r = make(Point, len(a))
	floats.ScaleTo(r, s, a)
	return
}

func Dot(a, b Point) (d float64, err error) {
	if err = checkDims(a, b); err != nil {
		return
	}
	return floats.Dot(a, b), nil
}

func DistanceSquared(a, b Point) (d float64, err error) {
	if err = checkDims(a, b); err != nil {
		return
	}
	return distanceSquared(a, b), nil
}

// Unchecked variants, callers have validated dimensions

func sub(a, b Point) (r Point) {
	r = make(Point, len(a))
	floats.SubTo(r, a, b)
	return
}

func distanceSquared(a, b Point) (d float64) {
	for i := range a {
		dx := a[i] - b[i]
		d += dx * dx
	}
	return
}

