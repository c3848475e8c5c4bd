package simplicial

import (
	"github.com/notargets/gosimplex/geometry"
)

// Sample sets: a closed curve parameterized over [1,7], a surface over a square and a 3-manifold over a pyramid.

func curvePoints() []geometry.Point {
	return []geometry.Point{{1}, {2}, {3}, {4}, {5}, {6}, {7}}
}

func curveValues() []float64 { return []float64{55, 180, 220, 45, 55, 180, 220} }

func curveSimplices() []Simplex {
	return []Simplex{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}}
}

func surfacePoints() []geometry.Point {
	return []geometry.Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}}
}

func surfaceValues() []float64 { return []float64{120, 60, 80, 90} }

func surfaceSimplices() []Simplex { return []Simplex{{0, 1, 2}, {2, 3, 0}} }

func solidPoints() []geometry.Point {
	return []geometry.Point{{10, 10, 10}, {90, 10, 10}, {90, 90, 10}, {10, 90, 10}, {50, 50, 90}}
}

func solidValues() []float64 { return []float64{20, 90, 60, 150, 180} }

func solidSimplices() []Simplex { return []Simplex{{0, 1, 2, 4}, {2, 3, 0, 4}} }
