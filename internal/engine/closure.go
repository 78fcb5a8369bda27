package engine

import "github.com/roach88/relcheck/internal/ir"

// Reachability computes the transitive closure of m with Warshall's
// algorithm. m is not modified; the result is an independent matrix where
// R[i][j] is true iff j is reachable from i in one or more steps.
func Reachability(m ir.Matrix) ir.Matrix {
	reach := m.Clone()
	n := reach.Size()
	for k := 0; k < n; k++ {
		rowK := reach.Row(k)
		for i := 0; i < n; i++ {
			if !reach.Get(i, k) {
				continue
			}
			rowI := reach.Row(i)
			for j := 0; j < n; j++ {
				rowI[j] = rowI[j] || rowK[j]
			}
		}
	}
	return reach
}

// ReflexiveClosure lists (e, e) for every element missing its loop, in
// element order.
func ReflexiveClosure(rel ir.Relation) []ir.Pair {
	closure := []ir.Pair{}
	for i := 0; i < rel.Size(); i++ {
		if !rel.Matrix.Get(i, i) {
			closure = append(closure, ir.Pair{From: rel.Elements[i], To: rel.Elements[i]})
		}
	}
	return closure
}

// SymmetricClosure lists the reverse of every pair whose reverse is
// missing.
//
// The scan visits (i, j) and (j, i) for each mismatch and both visits name
// the same missing pair; only the first occurrence is kept, so each missing
// pair appears exactly once, ordered by where the i-outer, j-inner scan
// first finds it.
func SymmetricClosure(rel ir.Relation) []ir.Pair {
	closure := []ir.Pair{}
	n := rel.Size()
	seen := make(map[[2]int]bool)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rel.Matrix.Get(i, j) == rel.Matrix.Get(j, i) {
				continue
			}
			from, to := i, j
			if rel.Matrix.Get(i, j) {
				from, to = j, i
			}
			key := [2]int{from, to}
			if seen[key] {
				continue
			}
			seen[key] = true
			closure = append(closure, ir.Pair{From: rel.Elements[from], To: rel.Elements[to]})
		}
	}
	return closure
}

// TransitiveClosure lists the pairs that reachability adds to the relation,
// in row-major order.
func TransitiveClosure(rel ir.Relation) []ir.Pair {
	return closureFrom(rel, Reachability(rel.Matrix))
}

func closureFrom(rel ir.Relation, reach ir.Matrix) []ir.Pair {
	closure := []ir.Pair{}
	n := rel.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !rel.Matrix.Get(i, j) && reach.Get(i, j) {
				closure = append(closure, ir.Pair{From: rel.Elements[i], To: rel.Elements[j]})
			}
		}
	}
	return closure
}
