package loader

import (
	"strings"

	"github.com/roach88/relcheck/internal/ir"
)

// Format serializes a relation to the two-line text format accepted by
// Parse. Pairs are written in row-major order.
func Format(rel ir.Relation) string {
	var b strings.Builder
	b.WriteString(FormatSet(rel.Elements))
	b.WriteByte('\n')
	b.WriteString(FormatPairs(rel.Pairs()))
	b.WriteByte('\n')
	return b.String()
}

// FormatSet renders elements as "{a, b, c}", or "{}" when empty.
func FormatSet(elements []ir.Element) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range elements {
		if i > 0 {
			b.WriteString(setSeparator)
		}
		b.WriteString(string(e))
	}
	b.WriteByte('}')
	return b.String()
}

// FormatPairs renders pairs in set-builder notation: "{(a, b), (c, d)}",
// or "{}" when empty.
func FormatPairs(pairs []ir.Pair) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte('}')
	return b.String()
}
