package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/relcheck/internal/ir"
)

// marshalResult converts a Result to canonical JSON TEXT for storage.
func marshalResult(res ir.Result) (string, error) {
	data, err := ir.MarshalCanonical(res)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}

// unmarshalResult parses canonical JSON TEXT to a Result.
// Missing closures decode as empty slices, never nil.
func unmarshalResult(data string) (ir.Result, error) {
	var res ir.Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return ir.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	if res.ReflexiveClosure == nil {
		res.ReflexiveClosure = []ir.Pair{}
	}
	if res.SymmetricClosure == nil {
		res.SymmetricClosure = []ir.Pair{}
	}
	if res.TransitiveClosure == nil {
		res.TransitiveClosure = []ir.Pair{}
	}
	return res, nil
}
