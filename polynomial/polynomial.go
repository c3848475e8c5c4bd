/*
Package polynomial finds the real roots of a polynomial by bracketing: the roots of the derivative split the real
line into monotonic intervals, each holding at most one root, which is then found by bisection.
*/
package polynomial

import (
	"math"
)

const (
	ROOTTOL   = 1.e-10 // |p(x)| below which x is accepted as a root
	MAXSEARCH = 2048   // interval doublings / bisections before giving up
)

// Polynomial holds coefficients in ascending order of power, p[0] + p[1]·x + p[2]·x² + ...
type Polynomial []float64

// Degree ignores trailing zero coefficients, the zero polynomial has degree -1
func (p Polynomial) Degree() int {
	return len(p.trim()) - 1
}

func (p Polynomial) trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

// Eval uses Horner's scheme
func (p Polynomial) Eval(x float64) (y float64) {
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}

func (p Polynomial) Derivative() (dp Polynomial) {
	if len(p) < 2 {
		return Polynomial{}
	}
	dp = make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		dp[i-1] = p[i] * float64(i)
	}
	return
}

// Roots returns the real roots in ascending order, an empty result means there are none.
// Repeated roots at which p does not change sign may be missed.
func (p Polynomial) Roots() (roots []float64) {
	p = p.trim()
	if len(p) < 2 {
		return
	}
	if len(p) == 2 {
		return []float64{-p[0] / p[1]}
	}
	crit := p.Derivative().Roots()
	if len(crit) == 0 {
		roots = append(roots, p.rootToward(0, -1)...)
		return append(roots, p.rootToward(0, 1)...)
	}
	roots = append(roots, p.rootToward(crit[0], -1)...)
	for i := 0; i < len(crit)-1; i++ {
		roots = append(roots, p.rootBetween(crit[i], crit[i+1])...)
	}
	return append(roots, p.rootToward(crit[len(crit)-1], 1)...)
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// rootBetween finds the root inside a monotonic interval (a, b), if there is one.
func (p Polynomial) rootBetween(a, b float64) []float64 {
	fa, fb := p.Eval(a), p.Eval(b)
	if sign(fa) == sign(fb) {
		return nil
	}
	for i := 0; i < MAXSEARCH; i++ {
		c := 0.5 * (a + b)
		fc := p.Eval(c)
		if math.Abs(fc) < ROOTTOL || c == a || c == b {
			return []float64{c}
		}
		if sign(fc) != sign(fa) {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
	}
	return []float64{0.5 * (a + b)}
}

// rootToward searches the monotonic half line from a in the direction of d, doubling the step until p changes sign
// or is seen to move away from zero.
func (p Polynomial) rootToward(a, d float64) []float64 {
	for i := 0; i < MAXSEARCH; i++ {
		fa, fd := p.Eval(a), p.Eval(a+d)
		if math.IsInf(fd, 0) || math.IsNaN(fd) {
			return nil
		}
		if sign(fd) != sign(fa) {
			return p.rootBetween(a, a+d)
		}
		if sign(fd-fa) == sign(fa) {
			return nil
		}
		a, d = a+d, 2*d
	}
	return nil
}
