// Package parser defines the common front-end contract for model parsers
// (the ingest/* packages do not implement it): turn a set of source
// [File]s into a populated [graph.ModelGraph]
// plus a [diag.Collector] of anything the front end could not make sense
// of, without ever panicking on malformed input.
//
// # Pipeline
//
// [Parser.Parse] only builds the raw graph — it does not resolve
// cross-references or check structural invariants. [Result] exposes
// [Result.Resolve], [Result.ValidateStructure], and
// [Result.ValidateRelationships] as separate steps, and
// [Result.IntoResolved] / [Result.IntoValidated] chain them fluently:
//
//	res, err := p.Parse(ctx, files)
//	res, err = res.IntoResolved(ctx)
//	res = res.IntoValidated()
//
// Each step is independent so a caller can stop after parsing (to inspect
// the raw graph), after resolving (to compute [resolve.Stats] without
// paying for validation), or run the full chain.
package parser
