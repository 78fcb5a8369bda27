// Package loader turns a relation source into an ir.Relation.
//
// Two source formats are accepted:
//
//	{a, b, c}
//	{(a, a), (a, b), (b, c)}
//
// a two-line text file (set literal, then relation literal), and a CUE or
// JSON document:
//
//	set: ["a", "b", "c"]
//	relation: [["a", "a"], ["a", "b"], ["b", "c"]]
//
// Labels resolve to element positions by exact string match. A label that
// does not resolve is a MALFORMED_INPUT error; it is never mapped to a
// default index. A source that cannot be read is SOURCE_NOT_FOUND.
package loader
