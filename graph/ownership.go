package graph

import "github.com/sysml-go/sysml-core/elementid"

const maxOwnershipWalk = 4096

// OwnerOf returns the direct owning element of id.
func (g *ModelGraph) OwnerOf(id elementid.ElementId) (elementid.ElementId, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.elements[id]
	if !ok {
		return elementid.ElementId{}, false
	}
	return e.Owner()
}

// OwningMembershipOf returns the Membership element that realizes id's
// ownership.
func (g *ModelGraph) OwningMembershipOf(id elementid.ElementId) (elementid.ElementId, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.elements[id]
	if !ok {
		return elementid.ElementId{}, false
	}
	return e.OwningMembership()
}

// Ancestors returns the chain of owning elements from id's direct owner up
// to the root, ordered parent-first. A bounded depth guard of
// maxOwnershipWalk stops runaway cycles; callers that need cycle detection
// proper should use [ValidateStructure].
func (g *ModelGraph) Ancestors(id elementid.ElementId) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	cur := id
	for i := 0; i < maxOwnershipWalk; i++ {
		e, ok := g.elements[cur]
		if !ok {
			break
		}
		owner, ok := e.Owner()
		if !ok {
			break
		}
		out = append(out, owner)
		cur = owner
	}
	return out
}

// IsRoot reports whether id has no owner.
func (g *ModelGraph) IsRoot(id elementid.ElementId) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.elements[id]
	if !ok {
		return false
	}
	_, hasOwner := e.Owner()
	return !hasOwner
}

// DepthOf returns the number of ancestors above id (0 for a root).
func (g *ModelGraph) DepthOf(id elementid.ElementId) int {
	return len(g.Ancestors(id))
}

// IsDescendantOf reports whether ancestor appears in child's ancestor
// chain.
func (g *ModelGraph) IsDescendantOf(child, ancestor elementid.ElementId) bool {
	for _, id := range g.Ancestors(child) {
		if id == ancestor {
			return true
		}
	}
	return false
}

// Roots returns every element with no owner, in insertion order.
func (g *ModelGraph) Roots() []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	for _, id := range g.elementOrder {
		if _, hasOwner := g.elements[id].Owner(); !hasOwner {
			out = append(out, id)
		}
	}
	return out
}

// Descendants returns the transitive set of elements owned (directly or
// indirectly) by id, depth-first, in a stable order: children are visited
// in the order they were inserted, and each child's own descendants are
// emitted immediately after it.
func (g *ModelGraph) Descendants(id elementid.ElementId) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []elementid.ElementId
	visited := map[elementid.ElementId]bool{}
	var walk func(elementid.ElementId)
	walk = func(cur elementid.ElementId) {
		for _, child := range g.childrenByOwner[cur] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			walk(child)
		}
	}
	walk(id)
	return out
}
