package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
)

// minCell is the narrowest matrix column, matching the classic 3-wide layout.
const minCell = 3

// labelWidth is the width of the property name column.
const labelWidth = 30

// Closure renders closure pairs in set-builder notation, "{}" when empty.
func Closure(pairs []ir.Pair) string {
	return loader.FormatPairs(pairs)
}

// Matrix writes the Boolean matrix of rel with row and column headers:
//
//	   |  a  b
//	---+------
//	  a|  1  1
//	  b|  0  1
func Matrix(w io.Writer, rel ir.Relation) error {
	var b strings.Builder
	writeMatrix(&b, rel)
	_, err := io.WriteString(w, b.String())
	return err
}

// Properties writes one labeled row per property flag.
func Properties(w io.Writer, res ir.Result) error {
	var b strings.Builder
	writeProperties(&b, res)
	_, err := io.WriteString(w, b.String())
	return err
}

// Analysis writes the full report for one source: the set and relation as
// parsed, the matrix, the property rows and the three closures.
func Analysis(w io.Writer, source string, rel ir.Relation, res ir.Result) error {
	var b strings.Builder
	if source != "" {
		fmt.Fprintf(&b, "%s Information\n", source)
	}
	fmt.Fprintf(&b, "S = %s\n", loader.FormatSet(rel.Elements))
	fmt.Fprintf(&b, "R: S→S = %s\n", loader.FormatPairs(rel.Pairs()))
	b.WriteByte('\n')
	writeMatrix(&b, rel)
	b.WriteString("\nThe properties of the relation:\n")
	writeProperties(&b, res)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Reflexive Closure: %s\n", Closure(res.ReflexiveClosure))
	fmt.Fprintf(&b, "Symmetric Closure: %s\n", Closure(res.SymmetricClosure))
	fmt.Fprintf(&b, "Transitive Closure: %s\n", Closure(res.TransitiveClosure))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMatrix(b *strings.Builder, rel ir.Relation) {
	widest := 0
	for _, e := range rel.Elements {
		widest = max(widest, displayWidth(string(e)))
	}
	head := max(minCell, widest)
	cell := max(minCell, widest+1)

	b.WriteString(pad("", head))
	b.WriteByte('|')
	for _, e := range rel.Elements {
		b.WriteString(pad(string(e), cell))
	}
	b.WriteByte('\n')

	b.WriteString(strings.Repeat("-", head))
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", cell*rel.Size()))
	b.WriteByte('\n')

	for i, e := range rel.Elements {
		b.WriteString(pad(string(e), head))
		b.WriteByte('|')
		for j := range rel.Elements {
			digit := "0"
			if rel.Matrix.Get(i, j) {
				digit = "1"
			}
			b.WriteString(pad(digit, cell))
		}
		b.WriteByte('\n')
	}
}

func writeProperties(b *strings.Builder, res ir.Result) {
	for _, row := range res.Properties() {
		fmt.Fprintf(b, "%-*s\t%t\n", labelWidth, row.Name, row.Value)
	}
}

// pad right-aligns s in a field of n terminal columns.
func pad(s string, n int) string {
	w := displayWidth(s)
	if w >= n {
		return s
	}
	return strings.Repeat(" ", n-w) + s
}

// displayWidth counts terminal columns: wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
