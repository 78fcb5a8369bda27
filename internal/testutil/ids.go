package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDGenerator returns predictable run IDs: "<prefix>-0001",
// "<prefix>-0002", ...
//
// This enables deterministic store tests without the time component of
// UUIDv7. Unlike store.FixedGenerator it never runs out.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceIDGenerator creates a generator. An empty prefix defaults to "run".
func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	if prefix == "" {
		prefix = "run"
	}
	return &SequenceIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
//
// Implements store.IDGenerator interface.
func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%04d", g.prefix, g.next)
}

// Reset restarts the sequence at 1.
func (g *SequenceIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next = 0
}
