// Package resolve implements the multi-strategy cross-reference resolver:
// it walks a populated [graph.ModelGraph], finds properties that hold an
// unresolved textual qualified name, and rewrites them in place to
// [model.Reference] values (no first-class [model.Relationship] is
// created), emitting [diag.Issue] diagnostics for
// anything it cannot resolve or that resolves to a kind the catalogue did
// not expect.
//
// # Strategies
//
// Six scope-walk strategies are supported, selected per (element kind,
// property) pair by [catalogue]: OwningNamespace, NonExpressionNamespace,
// RelativeNamespace, FeatureChaining, TransitionSpecific, and Global. See
// [ScopeStrategy].
//
// # Determinism
//
// Elements are visited in the graph's insertion order; within a single
// scope layer, ambiguous candidates are resolved to the first in
// insertion order. The resolver performs exactly one pass — it never
// re-resolves a property once visited.
//
// # Caching
//
// There is no separate scope-table cache: a [graph.ModelGraph] already
// indexes ownership and membership by map, so each scope-walk step is an
// O(1) lookup rather than a scan, and memoizing on top would only add
// invalidation risk for no measurable benefit. A fresh [Resolver] is
// expected for each resolve pass; it holds no state beyond its
// configuration and the graph it was given.
package resolve
