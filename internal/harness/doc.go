// Package harness provides conformance testing for relation analysis.
//
// A suite names one relation and the properties and closures it is
// expected to have. The harness loads the relation, runs the engine, and
// checks every stated expectation. Unstated fields are not checked.
//
// # Suite Format
//
// Suites are YAML files:
//
//	name: chain
//	description: "a→b→c is not transitive until (a, c) is added"
//	source: ../relations/chain.txt   # relative to the suite file
//	expect:
//	  transitive: false
//	  transitive_closure: [[a, c]]
//
// The relation may be given inline instead of through a source file:
//
//	set: "{a, b}"
//	relation: "{(a, b)}"
//
// A suite may also expect the load to fail:
//
//	expect:
//	  error: malformed_input   # or source_not_found
//
// # Golden Files
//
// Every outcome has a canonical JSON snapshot (relation plus result, or the
// error code) that can be compared against a golden file. Golden files make
// any change in closure ordering visible.
package harness
