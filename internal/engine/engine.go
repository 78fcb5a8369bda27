package engine

import "github.com/roach88/relcheck/internal/ir"

// Analyze runs every property test and closure computation over rel.
// Running it twice on the same relation yields identical results.
func Analyze(rel ir.Relation) ir.Result {
	reach := Reachability(rel.Matrix)

	res := ir.Result{
		Reflexive:     IsReflexive(rel.Matrix),
		Irreflexive:   IsIrreflexive(rel.Matrix),
		Symmetric:     IsSymmetric(rel.Matrix),
		Asymmetric:    IsAsymmetric(rel.Matrix),
		Antisymmetric: IsAntisymmetric(rel.Matrix),
		Transitive:    reach.Equal(rel.Matrix),

		ReflexiveClosure:  ReflexiveClosure(rel),
		SymmetricClosure:  SymmetricClosure(rel),
		TransitiveClosure: closureFrom(rel, reach),
	}
	res.EquivalenceRelation = IsEquivalenceRelation(res)
	res.PartialOrdering = IsPartialOrdering(res)
	return res
}

// IsEquivalenceRelation reports reflexive, symmetric and transitive.
func IsEquivalenceRelation(res ir.Result) bool {
	return res.Reflexive && res.Symmetric && res.Transitive
}

// IsPartialOrdering reports reflexive, antisymmetric and transitive.
func IsPartialOrdering(res ir.Result) bool {
	return res.Reflexive && res.Antisymmetric && res.Transitive
}
