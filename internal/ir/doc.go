// Package ir provides the shared representation of a relation analysis run.
//
// This package contains the types every other package exchanges: element
// labels, ordered pairs, the square Boolean matrix, and the result bundle
// produced by the engine. All other internal packages import ir; ir imports
// nothing internal.
//
// Key design constraints:
//   - Element order is first-appearance order and doubles as matrix index
//   - Matrix dimensions always equal the element count
//   - Closure slices are never nil, so they serialize as [] rather than null
//   - All JSON tags use snake_case
package ir
