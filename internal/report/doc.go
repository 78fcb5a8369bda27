// Package report renders relations and analysis results as text.
//
// Nothing here computes properties: report consumes an ir.Relation and the
// ir.Result the engine produced for it.
package report
