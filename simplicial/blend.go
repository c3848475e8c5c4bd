package simplicial

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/geometry"
)

/*
blend evaluates the weighted average over the face verts, where prj is the current projection of the query point
dot onto that face. Each sub-face left by deleting one vertex is weighted by the squared distance from prj to its
own projection on that sub-face, and evaluated recursively with that projection. Single vertices return their basis
function evaluated at dot itself.

Infinite weights take precedence: when present, the result is the mean over the infinitely weighted branches.
*/
func (ip *Interpolator) blend(dot, prj geometry.Point, verts []int) (val float64, err error) {
	if len(verts) == 1 {
		return ip.basis[verts[0]].Evaluate(dot), nil
	}
	var (
		subVals      = make([]float64, len(verts))
		weights      = make([]float64, len(verts))
		wMax         float64
		exactSum     float64
		exactBranchN int
	)
	for i := range verts {
		var (
			sub    = without(verts, i)
			subPrj geometry.Point
		)
		if subPrj, err = ip.geom.Project(prj, ip.complex.facePoints(sub)); err != nil {
			return
		}
		d2, _ := geometry.DistanceSquared(subPrj, prj)
		w := ip.weight(d2)
		if math.IsNaN(w) || w <= 0 {
			err = fmt.Errorf("%w: weight %v at squared distance %v", ErrInvalidWeight, w, d2)
			return
		}
		if subVals[i], err = ip.blend(dot, subPrj, sub); err != nil {
			return
		}
		weights[i] = w
		if math.IsInf(w, 1) {
			exactSum += subVals[i]
			exactBranchN++
		} else if w > wMax {
			wMax = w
		}
	}
	if exactBranchN != 0 {
		return exactSum / float64(exactBranchN), nil
	}
	// Weights near the float64 limit overflow the products unless scaled by the largest
	var up, dn float64
	for i, w := range weights {
		w /= wMax
		up += subVals[i] * w
		dn += w
	}
	return up / dn, nil
}
