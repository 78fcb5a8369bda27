// Package store provides SQLite-backed history of relation analysis runs.
//
// The store is an append-only log of runs. Each run records the source it
// was loaded from, content hashes of the relation and of the result, and
// the result itself as canonical JSON.
//
// # Ordering
//
//   - Every run gets a seq INTEGER one greater than the last (logical clock)
//   - All queries ORDER BY seq ASC, id ASC COLLATE BINARY
//   - Run IDs are UUIDv7 in production, fixed sequences in tests
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Content hashes are computed by internal/ir/hash.go with SHA-256 and
// domain separation.
package store
