package model

import (
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/span"
)

// Element is an immutable value describing one node of a model graph:
// an id, a kind, an optional name, optional ownership links, a property
// bag, and an optional source span.
//
// Elements are constructed via [New] or a kind-specific factory
// ([Package], [PartDefinition], ...), refined with With* methods (each
// returning a new Element), and handed to a graph for insertion. Nothing in
// this package mutates an Element value in place.
type Element struct {
	id               elementid.ElementId
	elemKind         kind.ElementKind
	name             string
	hasName          bool
	owner            elementid.ElementId
	owningMembership elementid.ElementId
	props            map[string]Value
	span             span.Span
}

// New constructs an Element of the given kind with a freshly generated id
// and no name, owner, or properties set.
func New(k kind.ElementKind) Element {
	return Element{
		id:       elementid.New(),
		elemKind: k,
		props:    map[string]Value{},
	}
}

// ID returns the element's identifier.
func (e Element) ID() elementid.ElementId { return e.id }

// Kind returns the element's kind tag.
func (e Element) Kind() kind.ElementKind { return e.elemKind }

// Name returns the element's name and true, or ("", false) if unnamed.
func (e Element) Name() (string, bool) { return e.name, e.hasName }

// Owner returns the id of the direct owning element and true, or (zero,
// false) for a root element.
func (e Element) Owner() (elementid.ElementId, bool) {
	if e.owner.IsZero() {
		return elementid.ElementId{}, false
	}
	return e.owner, true
}

// OwningMembership returns the id of the Membership element that realizes
// this element's ownership, and true, or (zero, false) if unset.
func (e Element) OwningMembership() (elementid.ElementId, bool) {
	if e.owningMembership.IsZero() {
		return elementid.ElementId{}, false
	}
	return e.owningMembership, true
}

// Span returns the element's source span, which is the zero Span when
// unset.
func (e Element) Span() span.Span { return e.span }

// Prop reads a single property by key.
func (e Element) Prop(key string) (Value, bool) {
	v, ok := e.props[key]
	return v, ok
}

// Props returns a copy of the full property map.
func (e Element) Props() map[string]Value {
	cp := make(map[string]Value, len(e.props))
	for k, v := range e.props {
		cp[k] = v
	}
	return cp
}

// WithID returns a copy of e with the id replaced, for callers that must
// assign a pre-generated id (for example one from elementid.FromString);
// ordinary callers should rely on the id assigned by [New].
func (e Element) WithID(id elementid.ElementId) Element {
	e.id = id
	return e
}

// WithName returns a copy of e with the name set.
func (e Element) WithName(name string) Element {
	e.name = name
	e.hasName = true
	return e
}

// WithOwner returns a copy of e with the direct owner set. This does not by
// itself synthesize a Membership; use a graph's AddOwnedElement for that.
func (e Element) WithOwner(owner elementid.ElementId) Element {
	e.owner = owner
	return e
}

// WithOwningMembership returns a copy of e with the owning membership id
// set.
func (e Element) WithOwningMembership(membership elementid.ElementId) Element {
	e.owningMembership = membership
	return e
}

// WithProp returns a copy of e with props[key] set to value.
func (e Element) WithProp(key string, value Value) Element {
	next := make(map[string]Value, len(e.props)+1)
	for k, v := range e.props {
		next[k] = v
	}
	next[key] = value
	e.props = next
	return e
}

// WithSpan returns a copy of e with the source span set.
func (e Element) WithSpan(s span.Span) Element {
	e.span = s
	return e
}

// IsZero reports whether e is the zero value Element (never produced by
// [New] or a factory, used as a sentinel in graph lookups).
func (e Element) IsZero() bool {
	return e.id.IsZero() && e.elemKind == kind.Element && !e.hasName && e.props == nil
}
