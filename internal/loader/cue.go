package loader

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/relcheck/internal/ir"
)

// ParseCUE evaluates a CUE (or JSON) document with a "set" list of labels
// and a "relation" list of [from, to] pairs.
//
// The document may use CUE expressions; only the evaluated values matter:
//
//	_nodes: ["a", "b"]
//	set: _nodes
//	relation: [for n in _nodes {[n, n]}]
func ParseCUE(data []byte, filename string) (ir.Relation, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return ir.Relation{}, cueError("evaluating document", err)
	}

	setVal := v.LookupPath(cue.ParsePath("set"))
	if !setVal.Exists() {
		return ir.Relation{}, malformed(0, "set is required")
	}
	var labels []string
	if err := setVal.Decode(&labels); err != nil {
		return ir.Relation{}, cueError("set must be a list of strings", err)
	}
	if labels == nil {
		labels = []string{}
	}

	relVal := v.LookupPath(cue.ParsePath("relation"))
	if !relVal.Exists() {
		return ir.Relation{}, malformed(0, "relation is required")
	}
	var raw [][]string
	if err := relVal.Decode(&raw); err != nil {
		return ir.Relation{}, cueError("relation must be a list of [from, to] pairs", err)
	}

	pairs := make([][2]string, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return ir.Relation{}, malformed(0, "pair %d has %d labels, want 2", i+1, len(p))
		}
		pairs = append(pairs, [2]string{p[0], p[1]})
	}

	return buildRelation(labels, pairs, 0, 0)
}

// cueError converts a CUE error into MALFORMED_INPUT, keeping the first
// position CUE reports.
func cueError(message string, err error) *LoadError {
	le := &LoadError{
		Code:    ErrCodeMalformedInput,
		Message: message,
		Err:     err,
	}
	if positions := cueerrors.Positions(err); len(positions) > 0 && positions[0].IsValid() {
		le.Line = positions[0].Line()
	}
	return le
}
