/*
Package manifold minimizes a function over the union of bounded n-manifolds. Each manifold is given as a map from
the unit cube [0,1]^n, which is pulled back onto R^n so the search on every chart is unconstrained.
*/
package manifold

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

var (
	ErrNoManifolds = errors.New("manifold: no manifolds to search")
	ErrNoMinimum   = errors.New("manifold: minimum not found")
)

// Map takes a point of the unit cube to a point on the manifold
type Map func(u []float64) []float64

type Objective func(x []float64) float64

// ToUnit maps R onto the open interval (0,1)
func ToUnit(a float64) float64 {
	return 0.5 * (1 + math.Atan(a)*2/math.Pi)
}

func toUnitCube(a []float64) (u []float64) {
	u = make([]float64, len(a))
	for i, ai := range a {
		u[i] = ToUnit(ai)
	}
	return
}

/*
Minimizer runs Nelder-Mead on each chart pulled back onto R^n, then polishes the result in the unit cube one
coordinate at a time. The polish reaches minima on the chart boundary, which the pulled back search only approaches.
*/
type Minimizer struct {
	FuncEvaluations int
	Iterations      int     // without improvement larger than Tolerance before converging
	Tolerance       float64 // absolute
	Sweeps          int     // coordinate sweeps of the polish
	LineTolerance   float64 // bracket width in the unit interval
}

func NewMinimizer() *Minimizer {
	return &Minimizer{
		FuncEvaluations: 20000,
		Iterations:      200,
		Tolerance:       1.e-12,
		Sweeps:          50,
		LineTolerance:   1.e-10,
	}
}

// Minimize searches each of the n-manifolds and returns the point with the smallest objective value
func Minimize(f Objective, maps []Map, n int) (x []float64, fx float64, err error) {
	return NewMinimizer().Minimize(f, maps, n)
}

func (mn *Minimizer) Minimize(f Objective, maps []Map, n int) (x []float64, fx float64, err error) {
	if len(maps) == 0 {
		err = ErrNoManifolds
		return
	}
	fx = math.Inf(1)
	for i, man := range maps {
		var (
			xm  []float64
			fxm float64
		)
		if xm, fxm, err = mn.minimizeOn(f, man, n); err != nil {
			err = fmt.Errorf("manifold %d: %w", i, err)
			return nil, 0, err
		}
		if fxm < fx {
			x, fx = xm, fxm
		}
	}
	return
}

func (mn *Minimizer) minimizeOn(f Objective, man Map, n int) (x []float64, fx float64, err error) {
	problem := optimize.Problem{
		Func: func(a []float64) float64 {
			return f(man(toUnitCube(a)))
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: mn.FuncEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   mn.Tolerance,
			Iterations: mn.Iterations,
		},
	}
	var result *optimize.Result
	result, err = optimize.Minimize(problem, make([]float64, n), settings, &optimize.NelderMead{})
	// Hitting an evaluation limit still leaves the best location found
	if result == nil || len(result.X) != n || math.IsNaN(result.F) {
		if err == nil {
			err = ErrNoMinimum
		} else {
			err = fmt.Errorf("%w: %w", ErrNoMinimum, err)
		}
		return nil, 0, err
	}
	err = nil
	u := toUnitCube(result.X)
	mn.polish(func(u []float64) float64 { return f(man(u)) }, u)
	x = man(u)
	fx = f(x)
	return
}

// polish moves u coordinate by coordinate to the best point of a line search over [0,1], never raising g(u)
func (mn *Minimizer) polish(g func(u []float64) float64, u []float64) (gu float64) {
	gu = g(u)
	for sweep := 0; sweep < mn.Sweeps; sweep++ {
		start := gu
		for i := range u {
			ui := u[i]
			t, gt := lineMin(func(t float64) float64 {
				u[i] = t
				return g(u)
			}, mn.LineTolerance)
			if gt <= gu {
				u[i], gu = t, gt
			} else {
				u[i] = ui
			}
		}
		if !(start-gu > mn.Tolerance) {
			break
		}
	}
	return
}

// lineMin is a golden section search of h over [0,1] that also tries both ends
func lineMin(h func(t float64) float64, tol float64) (t, ht float64) {
	const invPhi = 0.6180339887498949
	var (
		a, b   = 0., 1.
		c, d   = b - invPhi*(b-a), a + invPhi*(b-a)
		hc, hd = h(c), h(d)
	)
	for b-a > tol {
		if hc < hd {
			b, d, hd = d, c, hc
			c = b - invPhi*(b-a)
			hc = h(c)
		} else {
			a, c, hc = c, d, hd
			d = a + invPhi*(b-a)
			hd = h(d)
		}
	}
	// Ends win ties, the interior points only come within tol of them
	t, ht = 0, h(0)
	if h1 := h(1); h1 < ht {
		t, ht = 1, h1
	}
	if hc < ht {
		t, ht = c, hc
	}
	if hd < ht {
		t, ht = d, hd
	}
	return
}
