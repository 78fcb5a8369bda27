package ir

import "strings"

// Matrix is a fixed-size n×n Boolean matrix.
//
// Rows share a single backing array so Clone produces an independent copy
// with one allocation. The zero value is the 0×0 matrix.
type Matrix struct {
	n     int
	cells []bool
	rows  [][]bool
}

// NewMatrix creates an all-false n×n matrix.
func NewMatrix(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := Matrix{
		n:     n,
		cells: make([]bool, n*n),
		rows:  make([][]bool, n),
	}
	for i := 0; i < n; i++ {
		m.rows[i] = m.cells[i*n : (i+1)*n : (i+1)*n]
	}
	return m
}

// Size returns n.
func (m Matrix) Size() int {
	return m.n
}

// Get reports whether M[i][j] is set.
func (m Matrix) Get(i, j int) bool {
	return m.rows[i][j]
}

// Set assigns M[i][j].
func (m Matrix) Set(i, j int, v bool) {
	m.rows[i][j] = v
}

// Row returns row i. The slice aliases the matrix.
func (m Matrix) Row(i int) []bool {
	return m.rows[i]
}

// Clone returns a deep copy that shares no storage with m.
func (m Matrix) Clone() Matrix {
	c := NewMatrix(m.n)
	copy(c.cells, m.cells)
	return c
}

// Equal reports whether both matrices have the same size and cells.
func (m Matrix) Equal(other Matrix) bool {
	if m.n != other.n {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of true cells.
func (m Matrix) Count() int {
	count := 0
	for _, c := range m.cells {
		if c {
			count++
		}
	}
	return count
}

// String renders the matrix as rows of 0/1 digits, one row per line.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.n; j++ {
			if m.rows[i][j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
