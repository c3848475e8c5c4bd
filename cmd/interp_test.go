package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/notargets/gosimplex/InputParameters"
	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/simplicial"
	"github.com/notargets/gosimplex/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInterpolation(t *testing.T) {
	{ // Surface: header, two queries and a 34 x 34 grid
		ic, err := processInput("testdata/surface2d.yaml")
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, RunInterpolation(ic, &out))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1+2+34*34)
		assert.Equal(t, "point\tf\tsimplex", lines[0])
		cols := strings.Split(lines[1], "\t")
		require.Len(t, cols, 3)
		assert.Equal(t, "[50 50]", cols[0])
		assert.Equal(t, "0", cols[2])
		val, err := strconv.ParseFloat(cols[1], 64)
		require.NoError(t, err)
		assert.True(t, val > 60 && val < 120)
		// The second query is outside the square
		assert.True(t, strings.HasSuffix(lines[2], "\t-1"))
	}
	{ // Curve: two fields over the parameter line
		ic, err := processInput("testdata/curve1d.yaml")
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, RunInterpolation(ic, &out))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1+81)
		assert.Equal(t, "point\tx\ty\tsimplex", lines[0])
		// The grid starts on vertex 2 of the curve
		cols := strings.Split(lines[1], "\t")
		require.Len(t, cols, 4)
		assert.Equal(t, "[2]", cols[0])
		assert.Equal(t, "0", cols[3])
		for i, expected := range []float64{180, 45} {
			val, err := strconv.ParseFloat(cols[i+1], 64)
			require.NoError(t, err)
			assert.InDelta(t, expected, val, 1.e-9)
		}
	}
	{ // 3-manifold, sampled on the top face of the bounding cube
		ic, err := processInput("testdata/manifold3d.yaml")
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, RunInterpolation(ic, &out))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1+144)
		for _, line := range lines[1:] {
			assert.True(t, strings.HasSuffix(line, "\t-1"), line)
		}
	}
	{ // Linear data on an SU2 mesh is reproduced everywhere
		ic, err := processInput("testdata/square2d.yaml")
		require.NoError(t, err)
		assert.Len(t, ic.Points, 18)
		assert.Len(t, ic.Simplices, 22)
		var out bytes.Buffer
		require.NoError(t, RunInterpolation(ic, &out))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1+3)
		for i, q := range ic.Queries {
			cols := strings.Split(lines[i+1], "\t")
			require.Len(t, cols, 3)
			val, err := strconv.ParseFloat(cols[1], 64)
			require.NoError(t, err)
			assert.InDelta(t, q[0]+2*q[1], val, 1.e-8, "query %v", q)
		}
		assert.True(t, strings.HasSuffix(lines[3], "\t-1"))
	}
	{
		ic := &InputParameters.InterpolationCase{MeshFile: "square2d.su2", Points: [][]float64{{0, 0}}}
		assert.ErrorIs(t, loadMesh(ic, "testdata"), InputParameters.ErrInvalidCase)
	}
	{
		_, err := processInput("")
		assert.Error(t, err)
		_, err = processInput("testdata/missing.yaml")
		assert.Error(t, err)
	}
}

func TestNewInterpolators(t *testing.T) {
	ic := &InputParameters.InterpolationCase{
		Points:    [][]float64{{10, 10}, {90, 10}, {90, 90}, {10, 90}},
		Fields:    []InputParameters.Field{{Name: "a", Values: []float64{120, 60, 80, 90}}, {Name: "b", Values: []float64{1, 2, 3, 4}}},
		Simplices: [][]int{{1, 2, 3}, {3, 4, 1}},
		IndexBase: 1,
		Weight:    InputParameters.WeightParameters{Type: InputParameters.InversePower, Power: 2},
		Solver:    InputParameters.SolverParameters{Permissive: true},
	}
	require.NoError(t, ic.Validate())
	ips, err := NewInterpolators(ic)
	require.NoError(t, err)
	require.Len(t, ips, 2)
	for i, f := range ic.ValueFields() {
		for v, p := range ic.Points {
			val, err := ips[i].Interpolate(geometry.NewPoint(p...))
			require.NoError(t, err)
			assert.InDelta(t, f.Values[v], val, 1.e-9)
		}
	}
	{ // Out of range simplex index after shifting
		ic.IndexBase = 0
		_, err := NewInterpolators(ic)
		assert.ErrorIs(t, err, simplicial.ErrInvalidSimplex)
	}
}

func TestSolverAndWeight(t *testing.T) {
	{
		gs := newSolver(InputParameters.SolverParameters{})
		assert.False(t, gs.Permissive)
		assert.True(t, gs.Pivoting)
		assert.Equal(t, utils.PIVOTTOL, gs.Tolerance)
	}
	{
		gs := newSolver(InputParameters.SolverParameters{Permissive: true, Tolerance: 1.e-9, NoPivoting: true})
		assert.True(t, gs.Permissive)
		assert.False(t, gs.Pivoting)
		assert.Equal(t, utils.PIVOTEPS, gs.Epsilon)
		assert.Equal(t, 1.e-9, gs.Tolerance)
	}
	{
		w := newWeightFunction(InputParameters.WeightParameters{})
		assert.Equal(t, 0.25, w(4))
		w = newWeightFunction(InputParameters.WeightParameters{Type: InputParameters.InversePower, Power: 2})
		assert.Equal(t, 0.0625, w(4))
		w = newWeightFunction(InputParameters.WeightParameters{Type: InputParameters.InverseDistanceFallback, Fallback: 1.e5})
		assert.Equal(t, 1.e5, w(0))
	}
}
