package simplicial

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/types"
)

// Facet is a proper face of the complex together with the bounded projection of a query point onto it
type Facet struct {
	Vertices        []int
	Projection      geometry.Point
	DistanceSquared float64
}

func (f Facet) valid() bool { return f.Vertices != nil }

/*
NearestFacet searches every proper face of every simplex, down to single vertices, for the valid bounded projection
of dot closest to it. Faces are visited simplex by simplex in complex order, deleting vertices in ascending
position, and ties keep the first face found.

The search is exhaustive, S·2^(D+1) projections for S simplices of dimension D.
*/
func (ip *Interpolator) NearestFacet(dot geometry.Point) (best Facet, err error) {
	if err = ip.checkQuery(dot); err != nil {
		return
	}
	var (
		visited types.FaceSet
	)
	if ip.facetCache {
		visited = make(types.FaceSet)
	}
	best.DistanceSquared = math.Inf(1)
	for _, sx := range ip.complex.Simplices {
		for i := range sx {
			if best, err = ip.nearestSubFace(dot, without(sx, i), best, visited); err != nil {
				return
			}
		}
	}
	if !best.valid() {
		err = fmt.Errorf("%w: no bounded projection of %v onto any face", ErrExtrapolationFailed, dot)
	}
	return
}

func (ip *Interpolator) nearestSubFace(dot geometry.Point, face []int, best Facet,
	visited types.FaceSet) (Facet, error) {
	// A face already visited was searched along with all of its sub-faces
	if visited != nil && !visited.Add(face) {
		return best, nil
	}
	prj, ok, err := ip.geom.ProjectBounded(dot, ip.complex.facePoints(face))
	if err != nil {
		return best, fmt.Errorf("face %v: %w", face, err)
	}
	if ok {
		d2, _ := geometry.DistanceSquared(prj, dot)
		if d2 < best.DistanceSquared {
			best = Facet{
				Vertices:        face,
				Projection:      prj,
				DistanceSquared: d2,
			}
		}
	}
	if len(face) > 1 {
		for i := range face {
			if best, err = ip.nearestSubFace(dot, without(face, i), best, visited); err != nil {
				return best, err
			}
		}
	}
	return best, nil
}
