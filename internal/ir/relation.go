package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Element is an opaque label drawn from the set.
type Element string

// Pair is an ordered pair (From, To) of elements.
// Serialized as a two-element JSON array: ["a","b"].
type Pair struct {
	From Element
	To   Element
}

// String renders the pair as "(a, b)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.From, p.To)
}

// MarshalJSON encodes the pair as a two-element array without HTML escaping.
func (p Pair) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([2]string{string(p.From), string(p.To)}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a two-element array.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair: expected 2 elements, got %d", len(raw))
	}
	p.From = Element(raw[0])
	p.To = Element(raw[1])
	return nil
}

// Relation is a binary relation over an ordered set of elements.
// Matrix.Size() always equals len(Elements).
type Relation struct {
	Elements []Element
	Matrix   Matrix
}

// NewRelation creates an empty relation over the given elements.
func NewRelation(elements []Element) Relation {
	return Relation{
		Elements: elements,
		Matrix:   NewMatrix(len(elements)),
	}
}

// Size returns the cardinality of the set.
func (r Relation) Size() int {
	return len(r.Elements)
}

// Index returns the position of label in the element sequence.
func (r Relation) Index(label Element) (int, bool) {
	for i, e := range r.Elements {
		if e == label {
			return i, true
		}
	}
	return -1, false
}

// Pairs lists every pair in the relation in row-major order.
func (r Relation) Pairs() []Pair {
	pairs := make([]Pair, 0, r.Matrix.Count())
	for i := 0; i < r.Size(); i++ {
		for j := 0; j < r.Size(); j++ {
			if r.Matrix.Get(i, j) {
				pairs = append(pairs, Pair{From: r.Elements[i], To: r.Elements[j]})
			}
		}
	}
	return pairs
}
