package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/relcheck/internal/engine"
	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/testutil"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun builds a run for the chain a→b→c.
func createTestRun(t *testing.T, id, source string) Run {
	t.Helper()
	rel := chainRelation()
	run, err := NewRun(id, source, rel, engine.Analyze(rel))
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	return run
}

func chainRelation() ir.Relation {
	return testutil.FromPairs([]string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})
}
