package signal

import (
	"errors"
	"fmt"
)

// ErrInvalidShape indicates data that is not a rectangular 2D array.
var ErrInvalidShape = errors.New("signal: invalid shape")

// Matrix is a row-major (channels x samples) float32 buffer.
type Matrix struct {
	data []float32
	rows int
	cols int
}

// NewMatrix returns a zero-filled matrix. Negative dimensions are treated as 0.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Matrix{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// FromRows copies rows into a new matrix. All rows must have the same
// non-zero length.
func FromRows(rows [][]float32) (*Matrix, error) {
	cols, err := rectangular(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}

	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		copy(m.Row(i), r)
	}

	return m, nil
}

// FromFloat64Rows converts rows to float32 into a new matrix.
func FromFloat64Rows(rows [][]float64) (*Matrix, error) {
	cols, err := rectangular(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}

	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		dst := m.Row(i)
		for j, v := range r {
			dst[j] = float32(v)
		}
	}

	return m, nil
}

func rectangular(n int, rowLen func(int) int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}

	cols := rowLen(0)
	for i := 1; i < n; i++ {
		if l := rowLen(i); l != cols {
			return 0, fmt.Errorf("%w: row %d has %d samples, row 0 has %d", ErrInvalidShape, i, l, cols)
		}
	}
	if cols == 0 {
		return 0, fmt.Errorf("%w: rows have no samples", ErrInvalidShape)
	}

	return cols, nil
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Rows returns the number of channels.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of samples per channel.
func (m *Matrix) Cols() int { return m.cols }

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float32 {
	off := i * m.cols
	return m.data[off : off+m.cols : off+m.cols]
}

// At returns the sample at (row, col).
func (m *Matrix) At(row, col int) float32 {
	return m.data[row*m.cols+col]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) {
	m.data[row*m.cols+col] = v
}

// Data returns the contiguous backing slice.
func (m *Matrix) Data() []float32 {
	return m.data
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float32, len(m.data))
	copy(data, m.data)

	return &Matrix{data: data, rows: m.rows, cols: m.cols}
}

// ToRows returns a copy of the matrix as a slice of rows.
func (m *Matrix) ToRows() [][]float32 {
	out := make([][]float32, m.rows)
	for i := range out {
		out[i] = append([]float32(nil), m.Row(i)...)
	}

	return out
}

// Transpose returns a new (cols x rows) matrix.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			t.data[j*m.rows+i] = v
		}
	}

	return t
}

// SameShape reports whether m and o have identical dimensions.
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols
}
