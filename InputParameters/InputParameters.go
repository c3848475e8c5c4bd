package InputParameters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/gosimplex/utils"
)

var ErrInvalidCase = errors.New("InputParameters: invalid interpolation case")

type WeightType string

const (
	InverseDistance         WeightType = "inverse"
	InversePower            WeightType = "inversePower"
	InverseDistanceFallback WeightType = "inverseFallback"
)

type WeightParameters struct {
	Type     WeightType `json:"Type"`
	Power    int        `json:"Power"`    // inversePower only
	Fallback float64    `json:"Fallback"` // inverseFallback only, weight at zero distance
}

type SolverParameters struct {
	Permissive bool    `json:"Permissive"`
	Epsilon    float64 `json:"Epsilon"` // substitute pivot in permissive mode
	Tolerance  float64 `json:"Tolerance"`
	NoPivoting bool    `json:"NoPivoting"`
}

// Grid of Steps[i]+1 nodes per axis spanning [Min[i], Max[i]]
type GridParameters struct {
	Min   []float64 `json:"Min"`
	Max   []float64 `json:"Max"`
	Steps []int     `json:"Steps"`
}

// Field is one set of sample values, a curve in the plane carries an x and a y field over the same complex
type Field struct {
	Name   string    `json:"Name"`
	Values []float64 `json:"Values"`
}

// Parameters obtained from the YAML input file
type InterpolationCase struct {
	Title      string           `json:"Title"`
	MeshFile   string           `json:"MeshFile"` // SU2 mesh supplying Points and Simplices
	Points     [][]float64      `json:"Points"`
	Values     []float64        `json:"Values"`
	Fields     []Field          `json:"Fields"`
	Simplices  [][]int          `json:"Simplices"`
	IndexBase  int              `json:"IndexBase"` // 0 or 1
	Weight     WeightParameters `json:"Weight"`
	Solver     SolverParameters `json:"Solver"`
	Queries    [][]float64      `json:"Queries"`
	Grid       *GridParameters  `json:"Grid"`
	FacetCache bool             `json:"FacetCache"`
}

func (ic *InterpolationCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, ic)
}

func (ic *InterpolationCase) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ic.Title)
	if ic.MeshFile != "" {
		fmt.Printf("[%s]\t\t= Mesh File\n", ic.MeshFile)
	}
	fmt.Printf("[%d]\t\t\t\t= Points\n", len(ic.Points))
	fmt.Printf("[%d]\t\t\t\t= Simplices\n", len(ic.Simplices))
	fmt.Printf("[%d]\t\t\t\t= Index Base\n", ic.IndexBase)
	names := make([]string, 0, len(ic.Fields)+1)
	for _, f := range ic.ValueFields() {
		names = append(names, f.Name)
	}
	fmt.Printf("[%s]\t\t\t= Fields\n", strings.Join(names, ","))
	wt := ic.Weight.Type
	if wt == "" {
		wt = InverseDistance
	}
	fmt.Printf("[%s]\t\t\t= Weight Type\n", wt)
	switch wt {
	case InversePower:
		fmt.Printf("[%d]\t\t\t\t= Weight Power\n", ic.Weight.Power)
	case InverseDistanceFallback:
		fmt.Printf("%8.5g\t\t= Weight Fallback\n", ic.Weight.Fallback)
	}
	fmt.Printf("[%v]\t\t\t= Permissive Solver\n", ic.Solver.Permissive)
	fmt.Printf("[%v]\t\t\t= Facet Cache\n", ic.FacetCache)
	fmt.Printf("[%d]\t\t\t\t= Queries\n", len(ic.Queries))
	if ic.Grid != nil {
		fmt.Printf("%v -> %v by %v\t= Grid\n", ic.Grid.Min, ic.Grid.Max, ic.Grid.Steps)
	}
}

// ValueFields returns the named fields, or the plain Values as a single field named "f"
func (ic *InterpolationCase) ValueFields() (fields []Field) {
	if len(ic.Fields) != 0 {
		return ic.Fields
	}
	if ic.Values != nil {
		fields = []Field{{Name: "f", Values: ic.Values}}
	}
	return
}

// Dim is the dimension of the first point, zero when there are none
func (ic *InterpolationCase) Dim() int {
	if len(ic.Points) == 0 {
		return 0
	}
	return len(ic.Points[0])
}

// Validate checks the parts of the case that the interpolator does not check itself
func (ic *InterpolationCase) Validate() (err error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidCase, fmt.Sprintf(format, args...))
	}
	if ic.IndexBase != 0 && ic.IndexBase != 1 {
		return invalid("IndexBase must be 0 or 1, have %d", ic.IndexBase)
	}
	if len(ic.Fields) != 0 && ic.Values != nil {
		return invalid("give either Values or Fields, not both")
	}
	if len(ic.ValueFields()) == 0 {
		return invalid("no Values or Fields")
	}
	if !utils.IsFinite(ic.Points) {
		return invalid("points must be finite")
	}
	for _, f := range ic.Fields {
		switch strings.ToLower(f.Name) {
		case "":
			return invalid("field with no Name")
		case "true", "false": // unquoted y, n, yes, no, on and off parse as booleans
			return invalid("field name %q reads as a YAML boolean, quote the name", f.Name)
		}
	}
	for _, f := range ic.ValueFields() {
		if len(f.Values) != len(ic.Points) {
			return invalid("field %q has %d values for %d points", f.Name, len(f.Values), len(ic.Points))
		}
		if !utils.IsFinite(f.Values) {
			return invalid("field %q has values that are not finite", f.Name)
		}
	}
	switch ic.Weight.Type {
	case "", InverseDistance:
	case InversePower:
		if ic.Weight.Power < 1 {
			return invalid("weight power must be at least 1, have %d", ic.Weight.Power)
		}
	case InverseDistanceFallback:
		if !(ic.Weight.Fallback > 0) {
			return invalid("fallback weight must be positive, have %v", ic.Weight.Fallback)
		}
	default:
		return invalid("unknown weight type %q", ic.Weight.Type)
	}
	if ic.Solver.Epsilon < 0 || ic.Solver.Tolerance < 0 {
		return invalid("solver epsilon and tolerance must not be negative")
	}
	D := ic.Dim()
	for i, q := range ic.Queries {
		if len(q) != D {
			return invalid("query %d has dimension %d, points have %d", i, len(q), D)
		}
		if !utils.IsFinite(q) {
			return invalid("query %d is not finite", i)
		}
	}
	if g := ic.Grid; g != nil {
		if len(g.Min) != D || len(g.Max) != D || len(g.Steps) != D {
			return invalid("grid bounds and steps must have dimension %d", D)
		}
		for i, n := range g.Steps {
			if n < 0 {
				return invalid("grid steps must not be negative, axis %d has %d", i, n)
			}
		}
	}
	return
}

// ZeroBasedSimplices returns the simplices shifted by IndexBase
func (ic *InterpolationCase) ZeroBasedSimplices() (simplices [][]int) {
	simplices = make([][]int, len(ic.Simplices))
	for i, sx := range ic.Simplices {
		simplices[i] = make([]int, len(sx))
		for j, v := range sx {
			simplices[i][j] = v - ic.IndexBase
		}
	}
	return
}

// GridPoints enumerates the grid nodes with the first axis varying slowest
func (ic *InterpolationCase) GridPoints() (pts [][]float64) {
	g := ic.Grid
	if g == nil || len(g.Steps) == 0 {
		return
	}
	var (
		D     = len(g.Steps)
		index = make([]int, D)
	)
	for {
		p := make([]float64, D)
		for k := 0; k < D; k++ {
			p[k] = g.Min[k]
			if g.Steps[k] > 0 {
				p[k] += float64(index[k]) * (g.Max[k] - g.Min[k]) / float64(g.Steps[k])
			}
		}
		pts = append(pts, p)
		k := D - 1
		for ; k >= 0; k-- {
			if index[k] < g.Steps[k] {
				index[k]++
				break
			}
			index[k] = 0
		}
		if k < 0 {
			return
		}
	}
}
