package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// POW unrolls small integer powers, falling back to math.Pow beyond |p| > 8.
func POW(x float64, p int) (y float64) {
	var (
		n       = p
		flipped bool
	)
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	if n < 0 {
		n = -n
		flipped = true
	}
	switch n {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}
