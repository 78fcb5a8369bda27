package harness

import (
	"fmt"

	"github.com/roach88/relcheck/internal/engine"
	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
)

// Outcome is what running a suite produced: either a relation and its
// result, or the load error.
type Outcome struct {
	Suite    string
	Relation ir.Relation
	Result   ir.Result
	Err      error
}

// Failed reports whether the load failed.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Run loads the suite's relation and analyzes it. Load errors are part of
// the outcome, not a failure of Run: suites may expect them.
func Run(s *Suite) *Outcome {
	out := &Outcome{Suite: s.Name}

	var rel ir.Relation
	var err error
	if s.Source != "" {
		rel, err = loader.Load(s.Source)
	} else {
		rel, err = loader.ParseLines(s.Set, s.Relation)
	}
	if err != nil {
		out.Err = err
		return out
	}

	out.Relation = rel
	out.Result = engine.Analyze(rel)
	return out
}

// Execute runs a suite and checks it, returning the failures.
func Execute(s *Suite) (*Outcome, []string) {
	out := Run(s)
	return out, Check(s, out)
}

// errorKind maps a load error to the suite vocabulary.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case loader.IsSourceNotFound(err):
		return ExpectSourceNotFound
	case loader.IsMalformedInput(err):
		return ExpectMalformedInput
	default:
		return fmt.Sprintf("unexpected(%v)", err)
	}
}
