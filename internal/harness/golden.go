package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
)

// Snapshot captures an outcome for golden comparison.
// All fields use canonical JSON serialization for deterministic comparison.
type Snapshot struct {
	Suite    string            `json:"suite"`
	Error    string            `json:"error,omitempty"`
	Relation *RelationSnapshot `json:"relation,omitempty"`
	Result   *ir.Result        `json:"result,omitempty"`
}

// RelationSnapshot is the parsed relation: elements in order and pairs in
// row-major order.
type RelationSnapshot struct {
	Elements []ir.Element `json:"elements"`
	Pairs    []ir.Pair    `json:"pairs"`
}

// NewSnapshot builds the snapshot of an outcome.
func NewSnapshot(out *Outcome) Snapshot {
	snap := Snapshot{Suite: out.Suite}
	if out.Failed() {
		var le *loader.LoadError
		if errors.As(out.Err, &le) {
			snap.Error = string(le.Code)
		} else {
			snap.Error = out.Err.Error()
		}
		return snap
	}

	elements := out.Relation.Elements
	if elements == nil {
		elements = []ir.Element{}
	}
	res := out.Result
	snap.Relation = &RelationSnapshot{Elements: elements, Pairs: out.Relation.Pairs()}
	snap.Result = &res
	return snap
}

// GoldenBytes returns the canonical JSON snapshot of an outcome.
func GoldenBytes(out *Outcome) ([]byte, error) {
	data, err := ir.MarshalCanonical(NewSnapshot(out))
	if err != nil {
		return nil, fmt.Errorf("golden snapshot: %w", err)
	}
	return data, nil
}

// GoldenPath returns the golden file for a suite: golden/<name>.golden next
// to the suite file.
func GoldenPath(suitePath, name string) string {
	return filepath.Join(filepath.Dir(suitePath), "golden", name+".golden")
}

// CompareGolden reports whether the golden file at path holds data.
// A missing golden file is reported as os.ErrNotExist.
func CompareGolden(path string, data []byte) (bool, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(want, data), nil
}

// WriteGolden creates or replaces the golden file at path.
func WriteGolden(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create golden dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write golden file: %w", err)
	}
	return nil
}

// RunWithGolden runs a suite, fails the test on any expectation mismatch,
// and compares the snapshot against testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, suite *Suite) error {
	t.Helper()

	out, failures := Execute(suite)
	for _, f := range failures {
		t.Errorf("%s: %s", suite.Name, f)
	}
	return AssertGolden(t, out)
}

// AssertGolden compares an outcome's snapshot against its golden file
// without re-running the suite.
func AssertGolden(t *testing.T, out *Outcome) error {
	t.Helper()

	data, err := GoldenBytes(out)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, out.Suite, data)
	return nil
}
