package harness

import (
	"fmt"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
)

// Check compares an outcome against the suite's expectations and returns
// one message per mismatch. An empty slice means the suite passed.
func Check(s *Suite, out *Outcome) []string {
	failures := []string{}
	exp := s.Expect

	got := errorKind(out.Err)
	if got != exp.Error {
		if exp.Error == "" {
			failures = append(failures, fmt.Sprintf("unexpected load error: %v", out.Err))
		} else {
			failures = append(failures, fmt.Sprintf("error: expected %s, got %q", exp.Error, got))
		}
		return failures
	}
	if out.Failed() {
		return failures
	}

	res := out.Result
	flags := []struct {
		name string
		want *bool
		got  bool
	}{
		{"reflexive", exp.Reflexive, res.Reflexive},
		{"irreflexive", exp.Irreflexive, res.Irreflexive},
		{"symmetric", exp.Symmetric, res.Symmetric},
		{"asymmetric", exp.Asymmetric, res.Asymmetric},
		{"antisymmetric", exp.Antisymmetric, res.Antisymmetric},
		{"transitive", exp.Transitive, res.Transitive},
		{"equivalence_relation", exp.EquivalenceRelation, res.EquivalenceRelation},
		{"partial_ordering", exp.PartialOrdering, res.PartialOrdering},
	}
	for _, f := range flags {
		if f.want != nil && *f.want != f.got {
			failures = append(failures, fmt.Sprintf("%s: expected %t, got %t", f.name, *f.want, f.got))
		}
	}

	closures := []struct {
		name string
		want *[][]string
		got  []ir.Pair
	}{
		{"reflexive_closure", exp.ReflexiveClosure, res.ReflexiveClosure},
		{"symmetric_closure", exp.SymmetricClosure, res.SymmetricClosure},
		{"transitive_closure", exp.TransitiveClosure, res.TransitiveClosure},
	}
	for _, c := range closures {
		if c.want == nil {
			continue
		}
		want := toPairs(*c.want)
		if !equalPairs(want, c.got) {
			failures = append(failures, fmt.Sprintf("%s: expected %s, got %s",
				c.name, loader.FormatPairs(want), loader.FormatPairs(c.got)))
		}
	}

	return failures
}

func toPairs(raw [][]string) []ir.Pair {
	pairs := make([]ir.Pair, len(raw))
	for i, p := range raw {
		pairs[i] = ir.Pair{From: ir.Element(p[0]), To: ir.Element(p[1])}
	}
	return pairs
}

// equalPairs compares closures in order: closure order is part of the
// contract.
func equalPairs(a, b []ir.Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
