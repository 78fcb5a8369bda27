package testutil

import (
	"fmt"
	"math/rand/v2"

	"github.com/roach88/relcheck/internal/ir"
)

// Labels returns n distinct element labels: e1, e2, ..., en.
func Labels(n int) []ir.Element {
	labels := make([]ir.Element, n)
	for i := range labels {
		labels[i] = ir.Element(fmt.Sprintf("e%d", i+1))
	}
	return labels
}

// Empty returns the empty relation over n elements.
func Empty(n int) ir.Relation {
	return ir.NewRelation(Labels(n))
}

// Identity returns the relation where each element relates only to itself.
func Identity(n int) ir.Relation {
	rel := Empty(n)
	for i := 0; i < n; i++ {
		rel.Matrix.Set(i, i, true)
	}
	return rel
}

// Full returns the relation containing every ordered pair over n elements.
func Full(n int) ir.Relation {
	rel := Empty(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rel.Matrix.Set(i, j, true)
		}
	}
	return rel
}

// FromPairs builds a relation over the given labels.
// Panics if a pair references a label outside the set: fixtures are
// expected to be well-formed.
//
// Example:
//
//	rel := FromPairs([]string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})
func FromPairs(labels []string, pairs ...[2]string) ir.Relation {
	elements := make([]ir.Element, len(labels))
	for i, l := range labels {
		elements[i] = ir.Element(l)
	}
	rel := ir.NewRelation(elements)
	for _, p := range pairs {
		i, ok := rel.Index(ir.Element(p[0]))
		if !ok {
			panic(fmt.Sprintf("testutil.FromPairs: unknown label %q", p[0]))
		}
		j, ok := rel.Index(ir.Element(p[1]))
		if !ok {
			panic(fmt.Sprintf("testutil.FromPairs: unknown label %q", p[1]))
		}
		rel.Matrix.Set(i, j, true)
	}
	return rel
}

// Random returns a relation over n elements where each pair is present
// with probability density. The same seed always yields the same relation.
func Random(seed uint64, n int, density float64) ir.Relation {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rel := Empty(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				rel.Matrix.Set(i, j, true)
			}
		}
	}
	return rel
}
