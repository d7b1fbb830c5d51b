// Package codec implements the canonical JSON rendering of a
// [graph.ModelGraph]: the wire format a [store.Store] persists and a
// client diffs against. Canonical means byte-stable regardless of
// insertion order — every map is serialized with its keys sorted, so two
// processes building the same graph (the same elements and relationships,
// with the same ids) from different event orders produce identical bytes.
package codec
