// SPDX-License-Identifier: MIT

// Package matrix provides the square integer matrix used for duel margins
// and beatpath strengths. Dense stores elements row-major in a flat slice.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an n×n row-major matrix of int values.
// An empty (0×0) Dense is valid and has no cells.
type Dense struct {
	n    int   // order (rows == cols)
	data []int // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrBadShape when n < 0.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// FromRows copies a square [][]int into a new Dense.
// Returns ErrNonSquare if any row length differs from len(rows).
func FromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	d := &Dense{n: n, data: make([]int, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], row) // one contiguous row segment
	}

	return d, nil
}

// Order returns the number of rows (and columns).
func (m *Dense) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []int {
	if m == nil || i < 0 || i >= m.n {
		return nil
	}

	return append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
}

// Rows returns a deep [][]int copy of the matrix.
func (m *Dense) Rows() [][]int {
	out := make([][]int, m.Order())
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same order and cells.
func (m *Dense) Equal(o *Dense) bool {
	if m.Order() != o.Order() {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Without returns a copy of m with row and column k removed, preserving the
// relative order of the remaining indices.
// Complexity: O(n²).
func (m *Dense) Without(k int) (*Dense, error) {
	if _, err := m.indexOf("Without", k, k); err != nil {
		return nil, err
	}
	n := m.n - 1
	out := &Dense{n: n, data: make([]int, n*n)}
	var i, j, oi, oj int
	for i = 0; i < m.n; i++ {
		if i == k {
			continue
		}
		oj = 0
		for j = 0; j < m.n; j++ {
			if j == k {
				continue
			}
			out.data[oi*n+oj] = m.data[i*m.n+j]
			oj++
		}
		oi++
	}

	return out, nil
}

// Grow returns a copy of m with one extra zero row and column appended.
func (m *Dense) Grow() *Dense {
	n := m.Order() + 1
	out := &Dense{n: n, data: make([]int, n*n)}
	for i := 0; i < n-1; i++ {
		copy(out.data[i*n:i*n+n-1], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.Order(); i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
