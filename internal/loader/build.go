package loader

import "github.com/roach88/relcheck/internal/ir"

// buildRelation resolves labelled pairs against the element sequence.
// setLine and relLine are only used for error positions.
func buildRelation(labels []string, pairs [][2]string, setLine, relLine int) (ir.Relation, error) {
	elements := make([]ir.Element, 0, len(labels))
	index := make(map[string]int, len(labels))
	for _, label := range labels {
		if label == "" {
			return ir.Relation{}, malformed(setLine, "empty element label in set")
		}
		if _, dup := index[label]; dup {
			return ir.Relation{}, malformed(setLine, "duplicate element %q in set", label)
		}
		index[label] = len(elements)
		elements = append(elements, ir.Element(label))
	}

	rel := ir.NewRelation(elements)
	for n, pair := range pairs {
		row, ok := index[pair[0]]
		if !ok {
			return ir.Relation{}, malformed(relLine, "unknown element %q in pair %d", pair[0], n+1)
		}
		col, ok := index[pair[1]]
		if !ok {
			return ir.Relation{}, malformed(relLine, "unknown element %q in pair %d", pair[1], n+1)
		}
		rel.Matrix.Set(row, col, true)
	}
	return rel, nil
}
