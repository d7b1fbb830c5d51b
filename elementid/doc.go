// Package elementid provides ElementId, the stable 128-bit identifier used
// for every element and relationship in a model graph.
//
// ElementId wraps a [github.com/google/uuid.UUID]. Values are produced either
// randomly ([New]) or deterministically from an arbitrary string ([FromString]),
// so the same input always yields the same id within and across runs of the
// same binary version. Uniqueness is graph-local, not globally namespaced.
//
// ElementId is a comparable value type and safe for use as a map key.
package elementid
