package graph

import (
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
)

// OwnedMembers returns the elements transitively owned through a membership
// directly owned by namespace: every child of namespace that is not itself
// a Membership subtype (the membership plumbing elements are excluded),
// in insertion order. Private members are included; use [VisibleMembers]
// to filter by visibility.
func (g *ModelGraph) OwnedMembers(namespace elementid.ElementId) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	for _, child := range g.childrenByOwner[namespace] {
		e, ok := g.elements[child]
		if !ok {
			continue
		}
		if kind.IsSubtypeOf(e.Kind(), kind.Membership) {
			continue
		}
		out = append(out, child)
	}
	return out
}

// ImportsOf returns the Import-kind elements (Import, NamespaceImport,
// MembershipImport, Expose, ...) owned directly by namespace, in insertion
// order. These are Membership-subtype children, which OwnedMembers
// excludes; OwningMembership children are returned by neither.
func (g *ModelGraph) ImportsOf(namespace elementid.ElementId) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	for _, child := range g.childrenByOwner[namespace] {
		e, ok := g.elements[child]
		if !ok {
			continue
		}
		if kind.IsSubtypeOf(e.Kind(), kind.Import) {
			out = append(out, child)
		}
	}
	return out
}

// VisibleMembers returns the subset of OwnedMembers(namespace) whose
// owning membership carries visibility == public.
func (g *ModelGraph) VisibleMembers(namespace elementid.ElementId) []elementid.ElementId {
	members := g.OwnedMembers(namespace)

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	for _, id := range members {
		e, ok := g.elements[id]
		if !ok {
			continue
		}
		membershipID, ok := e.OwningMembership()
		if !ok {
			continue
		}
		membership, ok := g.elements[membershipID]
		if !ok {
			continue
		}
		if model.VisibilityOf(membership.Props()) == model.Public {
			out = append(out, id)
		}
	}
	return out
}
