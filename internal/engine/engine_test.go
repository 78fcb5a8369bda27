package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/testutil"
)

func pairs(ps ...[2]string) []ir.Pair {
	out := make([]ir.Pair, len(ps))
	for i, p := range ps {
		out[i] = ir.Pair{From: ir.Element(p[0]), To: ir.Element(p[1])}
	}
	return out
}

func TestAnalyze_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		res := Analyze(testutil.Identity(n))

		assert.True(t, res.Reflexive, "n=%d", n)
		assert.True(t, res.Symmetric, "n=%d", n)
		assert.True(t, res.Antisymmetric, "n=%d", n)
		assert.True(t, res.Transitive, "n=%d", n)
		assert.True(t, res.EquivalenceRelation, "n=%d", n)
		assert.True(t, res.PartialOrdering, "n=%d", n)
		assert.False(t, res.Irreflexive, "n=%d", n)
		assert.False(t, res.Asymmetric, "n=%d", n)
		assert.Empty(t, res.ReflexiveClosure, "n=%d", n)
		assert.Empty(t, res.SymmetricClosure, "n=%d", n)
		assert.Empty(t, res.TransitiveClosure, "n=%d", n)
	}
}

func TestAnalyze_EmptyRelation(t *testing.T) {
	for n := 1; n <= 6; n++ {
		rel := testutil.Empty(n)
		res := Analyze(rel)

		assert.False(t, res.Reflexive, "n=%d", n)
		assert.True(t, res.Irreflexive, "n=%d", n)
		assert.True(t, res.Symmetric, "n=%d", n)
		assert.True(t, res.Asymmetric, "n=%d", n)
		assert.True(t, res.Antisymmetric, "n=%d", n)
		assert.True(t, res.Transitive, "n=%d", n)
		assert.False(t, res.EquivalenceRelation, "n=%d", n)
		assert.False(t, res.PartialOrdering, "n=%d", n)

		require.Len(t, res.ReflexiveClosure, n, "one pair per diagonal element")
		for i, p := range res.ReflexiveClosure {
			assert.Equal(t, ir.Pair{From: rel.Elements[i], To: rel.Elements[i]}, p)
		}
		assert.Empty(t, res.SymmetricClosure, "n=%d", n)
		assert.Empty(t, res.TransitiveClosure, "n=%d", n)
	}
}

func TestAnalyze_EmptySet(t *testing.T) {
	res := Analyze(ir.NewRelation(nil))

	assert.False(t, res.Reflexive, "empty set is not reflexive by convention")
	assert.True(t, res.Irreflexive)
	assert.True(t, res.Symmetric)
	assert.True(t, res.Asymmetric)
	assert.True(t, res.Antisymmetric)
	assert.True(t, res.Transitive)
	assert.False(t, res.EquivalenceRelation)
	assert.False(t, res.PartialOrdering)

	assert.NotNil(t, res.ReflexiveClosure)
	assert.NotNil(t, res.SymmetricClosure)
	assert.NotNil(t, res.TransitiveClosure)
	assert.Empty(t, res.ReflexiveClosure)
	assert.Empty(t, res.SymmetricClosure)
	assert.Empty(t, res.TransitiveClosure)
}

func TestAnalyze_Chain(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})
	res := Analyze(rel)

	assert.False(t, res.Transitive)
	assert.Equal(t, pairs([2]string{"a", "c"}), res.TransitiveClosure)
}

func TestAnalyze_SingleArc(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b"}, [2]string{"a", "b"})
	res := Analyze(rel)

	assert.False(t, res.Symmetric)
	assert.Contains(t, res.SymmetricClosure, ir.Pair{From: "b", To: "a"})
	assert.True(t, res.Asymmetric)
	assert.True(t, res.Antisymmetric)
	assert.True(t, res.Transitive)
	assert.True(t, res.Irreflexive)
}

func TestAnalyze_SymmetricClosureHasNoDuplicates(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b", "c"},
		[2]string{"a", "b"},
		[2]string{"c", "a"},
		[2]string{"b", "c"},
	)
	res := Analyze(rel)

	// Scan order: (0,1) finds (b,a); (0,2) finds (a,c); (1,2) finds (c,b).
	assert.Equal(t, pairs(
		[2]string{"b", "a"},
		[2]string{"a", "c"},
		[2]string{"c", "b"},
	), res.SymmetricClosure)
}

func TestAnalyze_Full(t *testing.T) {
	res := Analyze(testutil.Full(4))

	assert.True(t, res.Reflexive)
	assert.True(t, res.Symmetric)
	assert.True(t, res.Transitive)
	assert.True(t, res.EquivalenceRelation)
	assert.False(t, res.Antisymmetric)
	assert.False(t, res.Asymmetric)
	assert.False(t, res.PartialOrdering)
}

func TestAnalyze_Singleton(t *testing.T) {
	loop := Analyze(testutil.Full(1))
	assert.True(t, loop.Reflexive)
	assert.True(t, loop.Antisymmetric)
	assert.False(t, loop.Asymmetric, "a loop is its own reverse")
	assert.True(t, loop.PartialOrdering)
	assert.True(t, loop.EquivalenceRelation)

	bare := Analyze(testutil.Empty(1))
	assert.False(t, bare.Reflexive)
	assert.Equal(t, pairs([2]string{"e1", "e1"}), bare.ReflexiveClosure)
}

func TestAnalyze_DivisibilityIsPartialOrder(t *testing.T) {
	labels := []string{"1", "2", "3", "4", "6", "12"}
	values := []int{1, 2, 3, 4, 6, 12}
	var ps [][2]string
	for i, a := range values {
		for j, b := range values {
			if b%a == 0 {
				ps = append(ps, [2]string{labels[i], labels[j]})
			}
		}
	}
	res := Analyze(testutil.FromPairs(labels, ps...))

	assert.True(t, res.PartialOrdering)
	assert.False(t, res.EquivalenceRelation)
	assert.False(t, res.Symmetric)
}

func TestAnalyze_Cycle(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b", "c"},
		[2]string{"a", "b"},
		[2]string{"b", "c"},
		[2]string{"c", "a"},
	)
	res := Analyze(rel)

	assert.False(t, res.Transitive)
	// Reachability over a 3-cycle is the full relation.
	assert.Equal(t, pairs(
		[2]string{"a", "a"},
		[2]string{"a", "c"},
		[2]string{"b", "a"},
		[2]string{"b", "b"},
		[2]string{"c", "b"},
		[2]string{"c", "c"},
	), res.TransitiveClosure)
}

func TestAnalyze_Idempotent(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		rel := testutil.Random(seed, int(seed%8), 0.3)

		first, err := ir.MarshalCanonical(Analyze(rel))
		require.NoError(t, err)
		second, err := ir.MarshalCanonical(Analyze(rel))
		require.NoError(t, err)

		assert.Equal(t, first, second, "seed %d", seed)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})
	before := rel.Matrix.Clone()

	Analyze(rel)

	assert.True(t, before.Equal(rel.Matrix), "the input matrix must not be aliased by reachability")
}

func TestDerivedClassifications(t *testing.T) {
	tests := []struct {
		name        string
		res         ir.Result
		equivalence bool
		partial     bool
	}{
		{"all", ir.Result{Reflexive: true, Symmetric: true, Antisymmetric: true, Transitive: true}, true, true},
		{"no reflexive", ir.Result{Symmetric: true, Antisymmetric: true, Transitive: true}, false, false},
		{"no transitive", ir.Result{Reflexive: true, Symmetric: true, Antisymmetric: true}, false, false},
		{"symmetric only branch", ir.Result{Reflexive: true, Symmetric: true, Transitive: true}, true, false},
		{"antisymmetric only branch", ir.Result{Reflexive: true, Antisymmetric: true, Transitive: true}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equivalence, IsEquivalenceRelation(tt.res))
			assert.Equal(t, tt.partial, IsPartialOrdering(tt.res))
		})
	}
}
