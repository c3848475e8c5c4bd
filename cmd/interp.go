/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notargets/gosimplex/InputParameters"
	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/readfiles"
	"github.com/notargets/gosimplex/simplicial"
	"github.com/notargets/gosimplex/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Evaluate the simplicial interpolant of a YAML case at its queries and grid nodes",
	Long: `
Reads the points, sample values and simplices of a case file, builds the basis functions and
prints one row per query or grid node: the point, the value of each field and the index of the
containing simplex (-1 when the point is extrapolated).

gosimplex interp -I cmd/testdata/surface2d.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			icFile string
			ic     *InputParameters.InterpolationCase
		)
		if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if ic, err = processInput(icFile); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ic.Print()
		}
		return RunInterpolation(ic, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the complex, its values and the queries")
	InterpCmd.Flags().IntP("parallel", "p", 0, "number of goroutines evaluating queries, 0 uses one per CPU")
	_ = viper.BindPFlag("parallel", InterpCmd.Flags().Lookup("parallel"))
}

func processInput(icFile string) (ic *InputParameters.InterpolationCase, err error) {
	if len(icFile) == 0 {
		exampleFile := `
########################################
Title: "Surface"
Points: [[10, 10], [90, 10], [90, 90], [10, 90]]
Values: [120, 60, 80, 90]
# Several named fields replace Values, quote the names:
# Fields:
#   - Name: "x"
#     Values: [120, 60, 80, 90]
#   - Name: "y"
#     Values: [1, 2, 3, 4]
Simplices: [[1, 2, 3], [3, 4, 1]]
IndexBase: 1
Weight:
  Type: inverse # Can be inversePower or inverseFallback
Queries:
  - [50, 50]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		return
	}
	var data []byte
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	ic = &InputParameters.InterpolationCase{}
	if err = ic.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", icFile, err)
	}
	if ic.MeshFile != "" {
		if err = loadMesh(ic, filepath.Dir(icFile)); err != nil {
			return nil, err
		}
	}
	if err = ic.Validate(); err != nil {
		return nil, err
	}
	return
}

// loadMesh fills the points and simplices of the case from its SU2 mesh file, found relative to dir
func loadMesh(ic *InputParameters.InterpolationCase, dir string) (err error) {
	if len(ic.Points) != 0 || len(ic.Simplices) != 0 {
		return fmt.Errorf("%w: give either MeshFile or Points and Simplices", InputParameters.ErrInvalidCase)
	}
	meshFile := ic.MeshFile
	if !filepath.IsAbs(meshFile) {
		meshFile = filepath.Join(dir, meshFile)
	}
	var mesh *readfiles.SU2Mesh
	if mesh, err = readfiles.ReadSU2(meshFile, viper.GetBool("verbose")); err != nil {
		return
	}
	ic.Points, ic.Simplices, ic.IndexBase = mesh.Points, mesh.Simplices, 0
	return
}

func newWeightFunction(wp InputParameters.WeightParameters) simplicial.WeightFunction {
	switch wp.Type {
	case InputParameters.InversePower:
		return simplicial.InversePower(wp.Power)
	case InputParameters.InverseDistanceFallback:
		return simplicial.InverseDistanceWithFallback(wp.Fallback)
	default:
		return simplicial.InverseDistance()
	}
}

func newSolver(sp InputParameters.SolverParameters) *utils.GaussSolver {
	var opts []utils.SolverOption
	if sp.Tolerance > 0 {
		opts = append(opts, utils.WithTolerance(sp.Tolerance))
	}
	if sp.Permissive {
		eps := sp.Epsilon
		if eps == 0 {
			eps = utils.PIVOTEPS
		}
		opts = append(opts, utils.WithPermissive(eps))
	}
	if sp.NoPivoting {
		opts = append(opts, utils.WithoutPivoting())
	}
	return utils.NewGaussSolver(opts...)
}

func toPoints(coords [][]float64) (pts []geometry.Point) {
	pts = make([]geometry.Point, len(coords))
	for i, c := range coords {
		pts[i] = geometry.NewPoint(c...)
	}
	return
}

// NewInterpolators builds one interpolator per value field of the case, all sharing its points and simplices
func NewInterpolators(ic *InputParameters.InterpolationCase) (ips []*simplicial.Interpolator, err error) {
	var (
		points    = toPoints(ic.Points)
		simplices = make([]simplicial.Simplex, len(ic.Simplices))
		opts      = []simplicial.Option{simplicial.WithSolver(newSolver(ic.Solver))}
		weight    = newWeightFunction(ic.Weight)
	)
	for i, sx := range ic.ZeroBasedSimplices() {
		simplices[i] = simplicial.Simplex(sx)
	}
	if ic.FacetCache {
		opts = append(opts, simplicial.WithFacetCache())
	}
	for _, f := range ic.ValueFields() {
		var (
			c  *simplicial.Complex
			ip *simplicial.Interpolator
		)
		if c, err = simplicial.NewComplex(points, f.Values, simplices); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		if ip, err = simplicial.NewInterpolator(c, weight, opts...); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		ips = append(ips, ip)
	}
	return
}

// RunInterpolation evaluates every query and grid node of the case and writes one row per point to w
func RunInterpolation(ic *InputParameters.InterpolationCase, w io.Writer) (err error) {
	var (
		ips     []*simplicial.Interpolator
		verbose = viper.GetBool("verbose")
		start   = time.Now()
	)
	if ips, err = NewInterpolators(ic); err != nil {
		return
	}
	fields := ic.ValueFields()
	header := make([]string, 0, len(fields)+2)
	header = append(header, "point")
	for _, f := range fields {
		header = append(header, f.Name)
	}
	header = append(header, "simplex")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	queries := append(toPoints(ic.Queries), toPoints(ic.GridPoints())...)
	values := make([][]float64, len(ips))
	for i, ip := range ips {
		if values[i], err = ip.EvaluateParallel(queries, viper.GetInt("parallel")); err != nil {
			return fmt.Errorf("field %s: %w", fields[i].Name, err)
		}
	}
	for k, q := range queries {
		var (
			row     = make([]string, 0, len(ips)+2)
			simplex int
		)
		row = append(row, formatPoint(q))
		for i := range ips {
			row = append(row, fmt.Sprintf("%g", values[i][k]))
		}
		if simplex, _, err = ips[0].Locate(q); err != nil {
			return fmt.Errorf("point %s: %w", formatPoint(q), err)
		}
		row = append(row, fmt.Sprintf("%d", simplex))
		fmt.Fprintln(w, strings.Join(row, "\t"))
		if verbose {
			log.Printf("%s evaluated in simplex %d\n", formatPoint(q), simplex)
		}
	}
	log.Printf("%d points evaluated in %v, %s\n", len(queries), time.Since(start), utils.GetMemUsage())
	return
}

func formatPoint(p geometry.Point) string {
	coords := make([]string, len(p))
	for i, x := range p {
		coords[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(coords, " ") + "]"
}
