package engine

import "github.com/roach88/relcheck/internal/ir"

// IsReflexive reports whether every element relates to itself.
// The empty set is not reflexive.
func IsReflexive(m ir.Matrix) bool {
	n := m.Size()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if !m.Get(i, i) {
			return false
		}
	}
	return true
}

// IsIrreflexive reports whether no element relates to itself.
func IsIrreflexive(m ir.Matrix) bool {
	for i := 0; i < m.Size(); i++ {
		if m.Get(i, i) {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether (x, y) in R implies (y, x) in R.
func IsSymmetric(m ir.Matrix) bool {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Get(i, j) != m.Get(j, i) {
				return false
			}
		}
	}
	return true
}

// IsAsymmetric reports whether (x, y) in R implies (y, x) not in R.
// A single loop (x, x) makes the relation non-asymmetric.
func IsAsymmetric(m ir.Matrix) bool {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if m.Get(i, j) && m.Get(j, i) {
				return false
			}
		}
	}
	return true
}

// IsAntisymmetric reports whether (x, y) and (y, x) in R imply x = y.
func IsAntisymmetric(m ir.Matrix) bool {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Get(i, j) && m.Get(j, i) {
				return false
			}
		}
	}
	return true
}

// IsTransitive reports whether (x, y) and (y, z) in R imply (x, z) in R.
func IsTransitive(m ir.Matrix) bool {
	return Reachability(m).Equal(m)
}
