// Package linalg provides a small row-major dense matrix, adapted from the
// kernel's teacher matrix package but trimmed to what the primitive
// transform algebra needs: building and applying 3x3 rotation matrices. No
// SPEC_FULL.md component needs general NxN solves, so eigen/LU/QR/inverse
// are not ported (see DESIGN.md).
package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a requested matrix shape is non-positive.
var ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0, dim).
var ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

// ErrDimensionMismatch indicates an operation's operands have incompatible
// shapes.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialised to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders m as bracketed rows, matching the teacher's debug format.
func (m *Dense) String() string {
	out := ""
	for i := 0; i < m.r; i++ {
		out += "["
		for j := 0; j < m.c; j++ {
			out += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j+1 < m.c {
				out += ", "
			}
		}
		out += "]\n"
	}
	return out
}
