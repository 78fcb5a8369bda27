package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalCanonical produces the compact JSON used for hashing, storage and
// golden files.
//
// Differences from json.Marshal:
//  1. No HTML escaping (< > & are NOT escaped)
//  2. No trailing newline
//  3. nil closure slices are rejected, so a Result always encodes [] not null
func MarshalCanonical(v any) ([]byte, error) {
	if res, ok := v.(Result); ok {
		if err := checkClosures(res); err != nil {
			return nil, err
		}
	}
	if res, ok := v.(*Result); ok && res != nil {
		if err := checkClosures(*res); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // CRITICAL: labels are emitted verbatim
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("canonical: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func checkClosures(res Result) error {
	switch {
	case res.ReflexiveClosure == nil:
		return fmt.Errorf("canonical: reflexive_closure is nil")
	case res.SymmetricClosure == nil:
		return fmt.Errorf("canonical: symmetric_closure is nil")
	case res.TransitiveClosure == nil:
		return fmt.Errorf("canonical: transitive_closure is nil")
	}
	return nil
}
