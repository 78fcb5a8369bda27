// Package engine computes the properties and closures of a relation.
//
// Analyze is a pure function of (elements, matrix): it owns no state,
// performs no I/O, and cannot fail. Rendering and persistence belong to the
// caller.
//
// Properties:
//   - Reflexive: every M[i][i]; the empty set is NOT reflexive by convention
//   - Irreflexive: no M[i][i]
//   - Symmetric: M[i][j] == M[j][i] for all i, j
//   - Asymmetric: never M[i][j] && M[j][i], diagonal included
//   - Antisymmetric: never M[i][j] && M[j][i] for i != j
//   - Transitive: the Warshall reachability matrix equals M
//
// Closures list the pairs missing for reflexivity, symmetry and
// transitivity, in the order the scan discovers them.
//
// The reachability computation is O(n^3); every other check is O(n^2).
package engine
