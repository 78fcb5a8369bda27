package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/testutil"
)

// withPairs returns a copy of rel with the given pairs added.
func withPairs(t *testing.T, rel ir.Relation, add []ir.Pair) ir.Relation {
	t.Helper()
	out := ir.Relation{Elements: rel.Elements, Matrix: rel.Matrix.Clone()}
	for _, p := range add {
		i, ok := out.Index(p.From)
		require.True(t, ok)
		j, ok := out.Index(p.To)
		require.True(t, ok)
		require.False(t, out.Matrix.Get(i, j), "closure pair %v already in relation", p)
		out.Matrix.Set(i, j, true)
	}
	return out
}

func TestReachability_Chain(t *testing.T) {
	rel := testutil.FromPairs([]string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})

	reach := Reachability(rel.Matrix)

	assert.Equal(t, "0111\n0011\n0001\n0000", reach.String())
	assert.Equal(t, "0100\n0010\n0001\n0000", rel.Matrix.String(), "input untouched")
}

func TestReachability_EmptyMatrix(t *testing.T) {
	reach := Reachability(ir.NewMatrix(0))
	assert.Equal(t, 0, reach.Size())
}

func TestReachability_Idempotent(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		m := testutil.Random(seed, 6, 0.2).Matrix
		once := Reachability(m)
		assert.True(t, once.Equal(Reachability(once)), "seed %d", seed)
	}
}

func TestClosuresRestoreProperties(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rel := testutil.Random(seed, int(seed%6)+1, 0.3)

		refl := withPairs(t, rel, ReflexiveClosure(rel))
		assert.True(t, IsReflexive(refl.Matrix), "seed %d reflexive", seed)

		sym := withPairs(t, rel, SymmetricClosure(rel))
		assert.True(t, IsSymmetric(sym.Matrix), "seed %d symmetric", seed)

		trans := withPairs(t, rel, TransitiveClosure(rel))
		assert.True(t, IsTransitive(trans.Matrix), "seed %d transitive", seed)
	}
}

func TestClosuresEmptyWhenPropertyHolds(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rel := testutil.Random(seed, 4, 0.5)
		res := Analyze(rel)

		assert.Equal(t, res.Reflexive, len(res.ReflexiveClosure) == 0, "seed %d", seed)
		assert.Equal(t, res.Symmetric, len(res.SymmetricClosure) == 0, "seed %d", seed)
		assert.Equal(t, res.Transitive, len(res.TransitiveClosure) == 0, "seed %d", seed)
	}
}

func TestTransitiveClosureMatchesAnalyze(t *testing.T) {
	rel := testutil.Random(99, 7, 0.25)
	assert.Equal(t, TransitiveClosure(rel), Analyze(rel).TransitiveClosure)
}

func TestReflexiveClosureOrder(t *testing.T) {
	rel := testutil.FromPairs([]string{"x", "y", "z"}, [2]string{"y", "y"})

	assert.Equal(t, pairs([2]string{"x", "x"}, [2]string{"z", "z"}), ReflexiveClosure(rel))
}
