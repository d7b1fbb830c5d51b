package graph

import "errors"

// Error sentinels for internal graph failures: programmer errors, not data
// issues. Structural data issues are reported via [model.StructuralError],
// returned from [ValidateStructure] and [ValidateRelationships].
var (
	// ErrNilGraph indicates a method was called on a nil *ModelGraph receiver.
	ErrNilGraph = errors.New("graph: nil *ModelGraph receiver")

	// ErrUnknownOwner indicates AddOwnedElement was called with an owner id
	// that does not exist in the graph.
	ErrUnknownOwner = errors.New("graph: owner element does not exist in the graph")

	// ErrElementNotFound indicates a query was made against an id not present
	// in the graph.
	ErrElementNotFound = errors.New("graph: element not found")
)
