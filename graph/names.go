package graph

import (
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/qname"
)

const maxInheritanceWalk = 64

// ResolveName returns the unique owned or inherited member of namespace
// with the given name. Owned members take priority over inherited ones;
// inherited members are gathered by following outgoing Specialize
// relationships (namespace as source, ancestor type as target)
// transitively, with a visited-set guard against cycles. On ambiguity
// (more than one candidate at the same level) the first match in insertion
// order is returned; callers that need strict ambiguity reporting should
// use the resolve package's full resolver instead.
func (g *ModelGraph) ResolveName(namespace elementid.ElementId, name string) (elementid.ElementId, bool) {
	for _, id := range g.OwnedMembers(namespace) {
		e, ok := g.GetElement(id)
		if !ok {
			continue
		}
		if n, hasName := e.Name(); hasName && n == name {
			return id, true
		}
	}

	visited := map[elementid.ElementId]bool{namespace: true}
	return g.resolveInherited(namespace, name, visited, 0)
}

func (g *ModelGraph) resolveInherited(namespace elementid.ElementId, name string, visited map[elementid.ElementId]bool, depth int) (elementid.ElementId, bool) {
	if depth >= maxInheritanceWalk {
		return elementid.ElementId{}, false
	}
	for _, r := range g.Relationships() {
		if r.Kind() != kind.Specialize || r.Source() != namespace {
			continue
		}
		ancestor := r.Target()
		if visited[ancestor] {
			continue
		}
		visited[ancestor] = true

		for _, id := range g.OwnedMembers(ancestor) {
			e, ok := g.GetElement(id)
			if !ok {
				continue
			}
			if n, hasName := e.Name(); hasName && n == name {
				return id, true
			}
		}
		if found, ok := g.resolveInherited(ancestor, name, visited, depth+1); ok {
			return found, true
		}
	}
	return elementid.ElementId{}, false
}

// ResolvePath folds ResolveName over qname's segments, starting at
// namespace: each segment is resolved within the scope reached by the
// previous one.
func (g *ModelGraph) ResolvePath(namespace elementid.ElementId, qn qname.QualifiedName) (elementid.ElementId, bool) {
	cur := namespace
	for _, seg := range qn.Segments() {
		next, ok := g.ResolveName(cur, seg)
		if !ok {
			return elementid.ElementId{}, false
		}
		cur = next
	}
	return cur, true
}

// ResolveQName resolves qn from each root element (an element with no
// owner) whose name matches qn's first segment, in insertion order,
// resolving the remaining segments with ResolveName and returning the
// first successful match.
func (g *ModelGraph) ResolveQName(qn qname.QualifiedName) (elementid.ElementId, bool) {
	segs := qn.Segments()
	if len(segs) == 0 {
		return elementid.ElementId{}, false
	}
	for _, root := range g.Roots() {
		e, ok := g.GetElement(root)
		if !ok {
			continue
		}
		if name, hasName := e.Name(); !hasName || name != segs[0] {
			continue
		}
		cur, found := root, true
		for _, seg := range segs[1:] {
			next, ok := g.ResolveName(cur, seg)
			if !ok {
				found = false
				break
			}
			cur = next
		}
		if found {
			return cur, true
		}
	}
	return elementid.ElementId{}, false
}

// BuildQualifiedName walks id's owner chain, collecting names from root
// down to id. It returns (name, false) if id or any ancestor lacks a name.
func (g *ModelGraph) BuildQualifiedName(id elementid.ElementId) (qname.QualifiedName, bool) {
	e, ok := g.GetElement(id)
	if !ok {
		return qname.QualifiedName{}, false
	}
	name, ok := e.Name()
	if !ok {
		return qname.QualifiedName{}, false
	}

	segments := []string{name}
	for _, ancestor := range g.Ancestors(id) {
		ae, ok := g.GetElement(ancestor)
		if !ok {
			return qname.QualifiedName{}, false
		}
		an, ok := ae.Name()
		if !ok {
			return qname.QualifiedName{}, false
		}
		segments = append([]string{an}, segments...)
	}
	return qname.New(segments...), true
}
