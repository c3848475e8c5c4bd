package simplicial

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpolator(t *testing.T, points []geometry.Point, values []float64, simplices []Simplex,
	weight WeightFunction, opts ...Option) *Interpolator {
	c, err := NewComplex(points, values, simplices)
	require.NoError(t, err)
	ip, err := NewInterpolator(c, weight, opts...)
	require.NoError(t, err)
	return ip
}

func TestInterpolateCurve(t *testing.T) {
	ip := newTestInterpolator(t, curvePoints(), curveValues(), curveSimplices(), InverseDistance())
	{ // Exact at every sample
		for i, p := range curvePoints() {
			val, err := ip.Interpolate(p)
			require.NoError(t, err)
			assert.InDelta(t, curveValues()[i], val, 1.e-9, "vertex %d", i)
		}
		val, err := ip.Interpolate(geometry.Point{1})
		require.NoError(t, err)
		assert.InDelta(t, 55., val, 1.e-9)
		val, err = ip.Interpolate(geometry.Point{4})
		require.NoError(t, err)
		assert.InDelta(t, 45., val, 1.e-9)
	}
	{ // Between samples the blend stays within the local affine fits
		bfs := ip.Basis()
		for _, tt := range []float64{1.25, 2.5, 3.5, 4.1, 6.9} {
			var (
				dot = geometry.Point{tt}
				s   = int(tt) - 1
			)
			val, err := ip.Interpolate(dot)
			require.NoError(t, err)
			lo := math.Min(bfs[s].Evaluate(dot), bfs[s+1].Evaluate(dot))
			hi := math.Max(bfs[s].Evaluate(dot), bfs[s+1].Evaluate(dot))
			assert.True(t, val >= lo-1.e-9 && val <= hi+1.e-9, "t = %v, val = %v, not in [%v,%v]", tt, val, lo, hi)
		}
	}
	{ // Outside the parameter range the nearest end vertex's basis function carries on
		val, err := ip.Interpolate(geometry.Point{0})
		require.NoError(t, err)
		assert.InDelta(t, -70., val, 1.e-9)
		val, err = ip.Interpolate(geometry.Point{8})
		require.NoError(t, err)
		assert.InDelta(t, 260., val, 1.e-9)
	}
	{ // A finite fallback weight only approximates the sample
		ipf := newTestInterpolator(t, curvePoints(), curveValues(), curveSimplices(),
			InverseDistanceWithFallback(1.e5))
		val, err := ipf.Interpolate(geometry.Point{1})
		require.NoError(t, err)
		assert.InDelta(t, 55., val, 1.e-2)
		assert.NotEqual(t, 55., val)
	}
}

func TestInterpolateNearVertex(t *testing.T) {
	var (
		points    = []geometry.Point{{0}, {1}, {2}}
		values    = []float64{55, 180, 220}
		simplices = []Simplex{{0, 1}, {1, 2}}
	)
	ip := newTestInterpolator(t, points, values, simplices, InverseDistance())
	// Inverse squared distances here reach the top of the float64 range
	for _, offset := range []float64{1.e-150, 1.e-154, 1.e-155, 5.e-324} {
		val, err := ip.Interpolate(geometry.Point{offset})
		require.NoError(t, err)
		assert.False(t, math.IsInf(val, 0) || math.IsNaN(val), "offset %v gave %v", offset, val)
		assert.InDelta(t, 55., val, 1.e-9, "offset %v", offset)
	}
}

func TestInterpolateSurface(t *testing.T) {
	for _, weight := range []WeightFunction{InverseDistance(), InversePower(2)} {
		ip := newTestInterpolator(t, surfacePoints(), surfaceValues(), surfaceSimplices(), weight)
		for i, p := range surfacePoints() {
			val, err := ip.Interpolate(p)
			require.NoError(t, err)
			assert.InDelta(t, surfaceValues()[i], val, 1.e-9, "vertex %d", i)
		}
	}
	ip := newTestInterpolator(t, surfacePoints(), surfaceValues(), surfaceSimplices(), InverseDistance())
	{ // Continuous across the shared diagonal
		eps := 1.e-7
		v1, err := ip.Interpolate(geometry.Point{40 + eps, 40 - eps})
		require.NoError(t, err)
		v2, err := ip.Interpolate(geometry.Point{40 - eps, 40 + eps})
		require.NoError(t, err)
		assert.InDelta(t, v1, v2, 1.e-4)
	}
	{ // Continuous across the hull boundary
		eps := 1.e-6
		s, _, err := ip.Locate(geometry.Point{50, 10 + eps})
		require.NoError(t, err)
		assert.Equal(t, 0, s)
		s, _, err = ip.Locate(geometry.Point{50, 10 - eps})
		require.NoError(t, err)
		assert.Equal(t, -1, s)

		in, err := ip.Interpolate(geometry.Point{50, 10 + eps})
		require.NoError(t, err)
		out, err := ip.Interpolate(geometry.Point{50, 10 - eps})
		require.NoError(t, err)
		assert.InDelta(t, in, out, 1.e-4)
	}
	{ // Far outside, the value comes from the single nearest bounded face
		dot := geometry.Point{300, -200}
		f, err := ip.NearestFacet(dot)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, f.Vertices)
		assert.Equal(t, geometry.Point{90, 10}, f.Projection)
		assert.InDelta(t, 210.*210.*2, f.DistanceSquared, 1.e-9)

		val, err := ip.Interpolate(dot)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(val) || math.IsInf(val, 0))
		expected, err := ip.blend(dot, f.Projection, f.Vertices)
		require.NoError(t, err)
		assert.Equal(t, expected, val)
		assert.InDelta(t, ip.Basis()[1].Evaluate(dot), val, 1.e-9)
	}
	{ // Below the bottom edge the edge is the nearest face
		f, err := ip.NearestFacet(geometry.Point{50, -5})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, f.Vertices)
		assert.InDeltaSlice(t, []float64{50, 10}, f.Projection, 1.e-12)
	}
}

func TestInterpolateSolid(t *testing.T) {
	ip := newTestInterpolator(t, solidPoints(), solidValues(), solidSimplices(), InverseDistance(),
		WithFacetCache())
	for i, p := range solidPoints() {
		val, err := ip.Interpolate(p)
		require.NoError(t, err)
		assert.InDelta(t, solidValues()[i], val, 1.e-9, "vertex %d", i)
	}
	vals, err := ip.EvaluateAll([]geometry.Point{{50, 40, 30}, {50, 50, 100}, {100, 100, 100}, {0, 0, 0}})
	require.NoError(t, err)
	for _, val := range vals {
		assert.True(t, utils.IsFinite(val))
	}
}

func TestFacetCache(t *testing.T) {
	var (
		plain  = newTestInterpolator(t, solidPoints(), solidValues(), solidSimplices(), InverseDistance())
		cached = newTestInterpolator(t, solidPoints(), solidValues(), solidSimplices(), InverseDistance(),
			WithFacetCache())
	)
	for _, dot := range []geometry.Point{{50, 50, 100}, {100, 100, 100}, {0, 0, 0}, {50, -20, 40}, {120, 50, 5}} {
		f1, err := plain.NearestFacet(dot)
		require.NoError(t, err)
		f2, err := cached.NearestFacet(dot)
		require.NoError(t, err)
		assert.InDelta(t, f1.DistanceSquared, f2.DistanceSquared, 1.e-9)
		assert.InDeltaSlice(t, f1.Projection, f2.Projection, 1.e-9)

		v1, err := plain.Interpolate(dot)
		require.NoError(t, err)
		v2, err := cached.Interpolate(dot)
		require.NoError(t, err)
		assert.InDelta(t, v1, v2, 1.e-6)
	}
}

func TestInterpolatorInputsUntouched(t *testing.T) {
	var (
		points    = surfacePoints()
		values    = surfaceValues()
		simplices = surfaceSimplices()
		dot       = geometry.Point{120, 50}
	)
	ip := newTestInterpolator(t, points, values, simplices, InverseDistance())
	v1, err := ip.Interpolate(dot)
	require.NoError(t, err)
	v2, err := ip.Interpolate(dot)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, surfacePoints(), points)
	assert.Equal(t, surfaceValues(), values)
	assert.Equal(t, surfaceSimplices(), simplices)
	assert.Equal(t, geometry.Point{120, 50}, dot)
}

func TestPackageLevelFunctions(t *testing.T) {
	{
		bfs, err := BuildBasisFunctions(curvePoints(), curveValues(), curveSimplices())
		require.NoError(t, err)
		val, err := Interpolate(geometry.Point{4}, curvePoints(), curveSimplices(), bfs, InverseDistance())
		require.NoError(t, err)
		assert.InDelta(t, 45., val, 1.e-9)

		_, err = Interpolate(geometry.Point{4}, curvePoints(), nil, bfs, InverseDistance())
		assert.True(t, errors.Is(err, ErrExtrapolationFailed))
		assert.True(t, errors.Is(err, ErrEmptyComplex))

		_, err = Interpolate(geometry.Point{4}, curvePoints(), curveSimplices(), bfs[:3], InverseDistance())
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	}
	{
		inside, coords, err := Contains(geometry.Point{60, 30}, surfacePoints(), Simplex{0, 1, 2})
		require.NoError(t, err)
		assert.True(t, inside)
		assert.Len(t, coords, 2)

		inside, _, err = Contains(geometry.Point{30, 60}, surfacePoints(), Simplex{0, 1, 2})
		require.NoError(t, err)
		assert.False(t, inside)

		_, _, err = Contains(geometry.Point{30, 60}, surfacePoints(), Simplex{0, 1, 7})
		assert.True(t, errors.Is(err, ErrInvalidSimplex))
	}
}

func TestInterpolatorFailures(t *testing.T) {
	ip := newTestInterpolator(t, surfacePoints(), surfaceValues(), surfaceSimplices(), InverseDistance())
	{
		_, err := ip.Interpolate(geometry.Point{1, 2, 3})
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
		_, err = ip.NearestFacet(geometry.Point{1})
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	}
	{
		c, err := NewComplex(surfacePoints(), surfaceValues(), surfaceSimplices())
		require.NoError(t, err)
		_, err = NewInterpolator(c, nil)
		assert.True(t, errors.Is(err, ErrInvalidWeight))
		_, err = NewInterpolator(nil, InverseDistance())
		assert.True(t, errors.Is(err, ErrEmptyComplex))

		bad, err := NewInterpolator(c, func(float64) float64 { return 0 })
		require.NoError(t, err)
		_, err = bad.Interpolate(geometry.Point{50, 30})
		assert.True(t, errors.Is(err, ErrInvalidWeight))

		_, err = NewInterpolatorWithBasis(c, []BasisFunction{{Coeffs: []float64{1}}, {}, {}, {}}, InverseDistance())
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	}
	{ // A flat triangle is caught by the containment test
		c, err := NewComplex([]geometry.Point{{0, 0}, {1, 1}, {2, 2}}, nil, []Simplex{{0, 1, 2}})
		require.NoError(t, err)
		bfs := []BasisFunction{{Coeffs: []float64{0, 0}}, {Coeffs: []float64{0, 0}}, {Coeffs: []float64{0, 0}}}
		flat, err := NewInterpolatorWithBasis(c, bfs, InverseDistance())
		require.NoError(t, err)
		_, err = flat.Interpolate(geometry.Point{0.5, 0.2})
		assert.True(t, errors.Is(err, ErrDegenerateSimplex))
	}
}

func TestWeightFunctions(t *testing.T) {
	assert.True(t, math.IsInf(InverseDistance()(0), 1))
	assert.Equal(t, 0.25, InverseDistance()(4))
	assert.Equal(t, 1.e5, InverseDistanceWithFallback(1.e5)(0))
	assert.Equal(t, 0.5, InverseDistanceWithFallback(1.e5)(2))
	assert.True(t, math.IsInf(InversePower(3)(0), 1))
	assert.InDelta(t, 0.25, InversePower(2)(2), 1.e-15)
	assert.Panics(t, func() { InverseDistanceWithFallback(0) })
	assert.Panics(t, func() { InversePower(0) })
}
