package model

import (
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
)

// Relationship is a first-class edge between two elements: a source, a
// target, a [kind.RelationshipKind], and an optional property bag.
type Relationship struct {
	id      elementid.ElementId
	relKind kind.RelationshipKind
	source  elementid.ElementId
	target  elementid.ElementId
	props   map[string]Value
}

// NewRelationship constructs a Relationship of the given kind between
// source and target, with a freshly generated id.
func NewRelationship(k kind.RelationshipKind, source, target elementid.ElementId) Relationship {
	return Relationship{
		id:      elementid.New(),
		relKind: k,
		source:  source,
		target:  target,
		props:   map[string]Value{},
	}
}

// ID returns the relationship's identifier.
func (r Relationship) ID() elementid.ElementId { return r.id }

// Kind returns the relationship's kind tag.
func (r Relationship) Kind() kind.RelationshipKind { return r.relKind }

// Source returns the source element id.
func (r Relationship) Source() elementid.ElementId { return r.source }

// Target returns the target element id.
func (r Relationship) Target() elementid.ElementId { return r.target }

// Prop reads a single property by key.
func (r Relationship) Prop(key string) (Value, bool) {
	v, ok := r.props[key]
	return v, ok
}

// Props returns a copy of the full property map.
func (r Relationship) Props() map[string]Value {
	cp := make(map[string]Value, len(r.props))
	for k, v := range r.props {
		cp[k] = v
	}
	return cp
}

// WithProp returns a copy of r with props[key] set to value.
func (r Relationship) WithProp(key string, value Value) Relationship {
	next := make(map[string]Value, len(r.props)+1)
	for k, v := range r.props {
		next[k] = v
	}
	next[key] = value
	r.props = next
	return r
}

// IsZero reports whether r is the zero-value Relationship.
func (r Relationship) IsZero() bool {
	return r.id.IsZero()
}
