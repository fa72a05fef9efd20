// Package mat provides small construction helpers around gonum dense
// matrices for building design matrices from row or column slices.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch = errors.New("column size mismatch")
	ErrRowMismatch = errors.New("row size mismatch")
)

// NewDenseFromRows builds a dense matrix from row-major slices. All rows
// must have the same length.
func NewDenseFromRows(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewDenseFromColumns builds a dense matrix whose i-th column is cols[i].
// All columns must have the same length.
func NewDenseFromColumns(cols ...[]float64) (*mat.Dense, error) {
	n := len(cols)
	var m int
	if n > 0 {
		m = len(cols[0])
	}
	for i, col := range cols {
		if len(col) != m {
			return nil, fmt.Errorf("at column %d, %w", i, ErrRowMismatch)
		}
	}

	x := mat.NewDense(m, n, nil)
	for i, col := range cols {
		x.SetCol(i, col)
	}
	return x, nil
}
