package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() Relation {
	rel := NewRelation([]Element{"a", "b", "c"})
	rel.Matrix.Set(0, 1, true)
	rel.Matrix.Set(1, 2, true)
	rel.Matrix.Set(2, 0, true)
	return rel
}

func TestRelationIndex(t *testing.T) {
	rel := abc()

	i, ok := rel.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = rel.Index("z")
	assert.False(t, ok)
}

func TestRelationPairsRowMajor(t *testing.T) {
	rel := abc()

	assert.Equal(t, []Pair{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	}, rel.Pairs())
}

func TestRelationPairsEmpty(t *testing.T) {
	rel := NewRelation(nil)
	pairs := rel.Pairs()

	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
	assert.Equal(t, 0, rel.Size())
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "(a, b)", Pair{From: "a", To: "b"}.String())
}

func TestPairJSON(t *testing.T) {
	data, err := json.Marshal(Pair{From: "a", To: "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(data))

	data, err = MarshalCanonical([]Pair{{From: "x<y", To: "b"}})
	require.NoError(t, err)
	assert.Equal(t, `[["x<y","b"]]`, string(data))

	var p Pair
	require.NoError(t, json.Unmarshal([]byte(`["c","d"]`), &p))
	assert.Equal(t, Pair{From: "c", To: "d"}, p)
}

func TestPairJSONRejectsWrongArity(t *testing.T) {
	var p Pair
	err := json.Unmarshal([]byte(`["c"]`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 elements")

	err = json.Unmarshal([]byte(`{"from":"c"}`), &p)
	require.Error(t, err)
}

func TestResultPropertiesOrder(t *testing.T) {
	res := Result{Reflexive: true, PartialOrdering: true}
	rows := res.Properties()

	require.Len(t, rows, 8)
	assert.Equal(t, PropReflexive, rows[0].Name)
	assert.True(t, rows[0].Value)
	assert.Equal(t, PropIrreflexive, rows[1].Name)
	assert.False(t, rows[1].Value)
	assert.Equal(t, PropPartialOrdering, rows[7].Name)
	assert.True(t, rows[7].Value)
}
