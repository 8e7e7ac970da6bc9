package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var ErrEmptyMatrix = errors.New("storage: matrix file has no data")

// Matrix is a loaded data matrix; each column is one snapshot.
type Matrix struct {
	Data    *mat.CDense
	Complex bool
}

// Real returns the real part as a new dense matrix.
func (m *Matrix) Real() *mat.Dense {
	rows, cols := m.Data.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, real(m.Data.At(i, j)))
		}
	}
	return out
}

// Column returns column j as complex values.
func (m *Matrix) Column(j int) []complex128 {
	rows, _ := m.Data.Dims()
	col := make([]complex128, rows)
	for i := range col {
		col[i] = m.Data.At(i, j)
	}
	return col
}

func LoadMatrix(path string) (*Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := ReadMatrix(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadMatrix parses CSV rows of real ("1.5") or complex ("1+2i") cells.
// Lines starting with '#' are comments.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	rows, cols := len(records), len(records[0])
	data := make([]complex128, 0, rows*cols)
	isComplex := false
	for i, record := range records {
		for j, cell := range record {
			cell = strings.TrimSpace(cell)
			v, err := strconv.ParseComplex(cell, 128)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			if imag(v) != 0 {
				isComplex = true
			}
			data = append(data, v)
		}
	}
	return &Matrix{Data: mat.NewCDense(rows, cols, data), Complex: isComplex}, nil
}

// SaveMatrix writes a real matrix as CSV.
func SaveMatrix(path string, m mat.Matrix) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, cols := m.Dims()
	w := csv.NewWriter(file)
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}

// SaveCMatrix writes a complex matrix as CSV.
func SaveCMatrix(path string, m mat.CMatrix) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, cols := m.Dims()
	w := csv.NewWriter(file)
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strings.Trim(strconv.FormatComplex(m.At(i, j), 'g', -1, 128), "()")
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}
