// Package graph holds the in-memory model graph: element and relationship
// storage, ownership/membership bookkeeping, name resolution primitives,
// library registration, and structural validation.
//
// # Thread Safety
//
// [ModelGraph] is safe for concurrent use. Readers (the ownership, membership,
// and name-resolution queries) may run concurrently with each other and with
// [ModelGraph.AddElement] / [ModelGraph.AddOwnedElement] / [ModelGraph.AddRelationship];
// the graph serializes mutation internally.
//
// # Ordering Guarantees
//
// Every slice-returning method iterates in the order elements were inserted,
// never map order. [ModelGraph.Roots], [ModelGraph.Descendants],
// [ModelGraph.OwnedMembers] and friends are therefore deterministic across
// runs for the same sequence of insertions.
//
// # Lifecycle
//
// Elements and relationships are produced by external parsers or by
// [model] factories, then handed to [ModelGraph.AddElement] or
// [ModelGraph.AddOwnedElement] exactly once. After insertion, elements are
// mutated only through [ModelGraph.SetProp] (property patching, used by the
// resolver to attach Reference values) — ownership is never changed once set.
package graph
