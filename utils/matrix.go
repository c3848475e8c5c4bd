package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix backed by a gonum mat.Dense.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:    m,
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows copies a ragged-checked slice of rows into a Matrix.
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr == 0 {
		err = fmt.Errorf("%w: matrix has no rows", ErrDimensionMismatch)
		return
	}
	nc = len(rows[0])
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrDimensionMismatch, i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	if nc == 0 {
		err = fmt.Errorf("%w: matrix has no columns", ErrDimensionMismatch)
		return
	}
	R = NewMatrix(nr, nc, data)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		panic(fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name))
	}
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, row []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetRow(i, row)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.M.RawMatrix().Data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) SwapRows(i1, i2 int) Matrix { // Changes receiver
	m.checkWritable()
	var (
		r1 = m.M.RawRowView(i1)
		r2 = m.M.RawRowView(i2)
	)
	for j := range r1 {
		r1[j], r2[j] = r2[j], r1[j]
	}
	return m
}

func (m Matrix) MaxAbs() (max float64) {
	var (
		nr, nc = m.Dims()
	)
	for i := 0; i < nr; i++ {
		for _, val := range m.M.RawRowView(i)[:nc] {
			if a := math.Abs(val); a > max {
				max = a
			}
		}
	}
	return
}
