package render

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var ErrShapeMismatch = errors.New("render: cannot reshape column")

// Order selects how a flat column is laid out into a grid.
type Order int

const (
	// ColumnMajor fills the grid one column at a time (Fortran order).
	ColumnMajor Order = iota
	// RowMajor fills the grid one row at a time (C order).
	RowMajor
)

func (o Order) String() string {
	if o == RowMajor {
		return "C"
	}
	return "F"
}

// ParseOrder accepts "F"/"column-major" and "C"/"row-major".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "column-major", "column", "col":
		return ColumnMajor, nil
	case "c", "row-major", "row":
		return RowMajor, nil
	}
	return ColumnMajor, fmt.Errorf("render: unknown element order %q", s)
}

// Reshape lays col out as an nx-by-ny matrix. The result does not alias col.
func Reshape(col []float64, nx, ny int, order Order) (*mat.Dense, error) {
	if nx <= 0 || ny <= 0 || nx*ny != len(col) {
		return nil, fmt.Errorf("%w of size %d into shape (%d,%d)", ErrShapeMismatch, len(col), nx, ny)
	}
	data := make([]float64, len(col))
	switch order {
	case RowMajor:
		copy(data, col)
	default:
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				data[i*ny+j] = col[j*nx+i]
			}
		}
	}
	return mat.NewDense(nx, ny, data), nil
}
