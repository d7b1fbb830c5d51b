package graph

import (
	"log/slog"
	"sync"

	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
)

// ModelGraph is the aggregate root of a SysML model: elements,
// relationships, registered library roots, and the secondary indexes that
// make ownership and name-lookup queries fast.
//
// The zero value is not usable; construct with [New].
type ModelGraph struct {
	mu     sync.RWMutex
	config graphConfig

	elements      map[elementid.ElementId]model.Element
	relationships map[elementid.ElementId]model.Relationship

	elementOrder      []elementid.ElementId
	relationshipOrder []elementid.ElementId

	libraryPackages []elementid.ElementId
	libraryIndex    map[string][]elementid.ElementId // member name -> ids, across all libraries

	childrenByOwner map[elementid.ElementId][]elementid.ElementId
	byKind          map[kind.ElementKind][]elementid.ElementId
	byNameInOwner   map[ownerNameKey][]elementid.ElementId
}

type ownerNameKey struct {
	owner elementid.ElementId
	name  string
}

// New constructs an empty ModelGraph.
func New(opts ...Option) *ModelGraph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ModelGraph{
		config:          cfg,
		elements:        make(map[elementid.ElementId]model.Element),
		relationships:   make(map[elementid.ElementId]model.Relationship),
		libraryIndex:    make(map[string][]elementid.ElementId),
		childrenByOwner: make(map[elementid.ElementId][]elementid.ElementId),
		byKind:          make(map[kind.ElementKind][]elementid.ElementId),
		byNameInOwner:   make(map[ownerNameKey][]elementid.ElementId),
	}
}

func (g *ModelGraph) logDebug(msg string, args ...any) {
	if g.config.logger != nil {
		g.config.logger.Debug(msg, args...)
	}
}

// AddElement inserts e into the graph as-is (its Owner/OwningMembership, if
// any, must already be set by the caller) and refreshes secondary indexes.
// It returns e's id. Panics if an element with the same id already exists,
// since that can only happen from caller misuse of ElementId.
func (g *ModelGraph) AddElement(e model.Element) elementid.ElementId {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := e.ID()
	if _, exists := g.elements[id]; exists {
		panic("graph.AddElement: element " + id.String() + " already present")
	}

	g.insertLocked(e)
	g.logDebug("graph.add_element", slog.String("id", id.String()), slog.String("kind", e.Kind().String()))
	return id
}

// AddOwnedElement inserts e as an owned member of owner: it synthesizes an
// OwningMembership element (owner = owner, props visibility/memberName/
// isNamespace), sets e.owning_membership and e.owner accordingly, and
// inserts both the membership and e. It returns e's (possibly rewritten)
// id.
//
// isNamespace on the synthesized membership is true exactly when owner's
// kind is Package (the only kind allowed to directly own sub-namespaces
// through plain OwningMembership in this model).
func (g *ModelGraph) AddOwnedElement(e model.Element, owner elementid.ElementId, visibility model.Visibility) elementid.ElementId {
	g.mu.Lock()
	defer g.mu.Unlock()

	ownerElem, ok := g.elements[owner]
	if !ok {
		panic("graph.AddOwnedElement: " + ErrUnknownOwner.Error() + ": " + owner.String())
	}

	membership := model.OwningMembership().WithOwner(owner)
	if name, ok := e.Name(); ok {
		membership = membership.WithProp(model.PropMemberName, model.String(name))
	}
	membership = membership.WithProp(model.PropVisibility, model.String(string(visibility)))
	membership = membership.WithProp(model.PropIsNamespace, model.Bool(ownerElem.Kind() == kind.Package))

	membershipID := membership.ID()
	g.insertLocked(membership)

	e = e.WithOwner(owner).WithOwningMembership(membershipID)
	g.insertLocked(e)

	return e.ID()
}

// insertLocked performs the raw index bookkeeping for AddElement's body.
// Caller must hold g.mu.
func (g *ModelGraph) insertLocked(e model.Element) {
	id := e.ID()
	g.elements[id] = e
	g.elementOrder = append(g.elementOrder, id)
	g.byKind[e.Kind()] = append(g.byKind[e.Kind()], id)

	if owner, ok := e.Owner(); ok {
		g.childrenByOwner[owner] = append(g.childrenByOwner[owner], id)
		if name, ok := e.Name(); ok {
			key := ownerNameKey{owner: owner, name: name}
			g.byNameInOwner[key] = append(g.byNameInOwner[key], id)
		}
	}
}

// AddRelationship inserts r into the graph and returns its id.
func (g *ModelGraph) AddRelationship(r model.Relationship) elementid.ElementId {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := r.ID()
	if _, exists := g.relationships[id]; exists {
		panic("graph.AddRelationship: relationship " + id.String() + " already present")
	}
	g.relationships[id] = r
	g.relationshipOrder = append(g.relationshipOrder, id)
	return id
}

// GetElement returns the element with the given id.
func (g *ModelGraph) GetElement(id elementid.ElementId) (model.Element, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.elements[id]
	return e, ok
}

// GetRelationship returns the relationship with the given id.
func (g *ModelGraph) GetRelationship(id elementid.ElementId) (model.Relationship, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.relationships[id]
	return r, ok
}

// SetProp patches a single property on an existing element, the narrow
// mutation the resolver uses to attach Reference(target_id) values. It does
// not change ownership and does not touch any secondary index (the by-name
// index included, so it cannot be used to rename an element).
func (g *ModelGraph) SetProp(id elementid.ElementId, key string, value model.Value) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.elements[id]
	if !ok {
		return false
	}
	g.elements[id] = e.WithProp(key, value)
	return true
}

// Elements returns every element in insertion order.
func (g *ModelGraph) Elements() []model.Element {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Element, 0, len(g.elementOrder))
	for _, id := range g.elementOrder {
		out = append(out, g.elements[id])
	}
	return out
}

// Relationships returns every relationship in insertion order.
func (g *ModelGraph) Relationships() []model.Relationship {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Relationship, 0, len(g.relationshipOrder))
	for _, id := range g.relationshipOrder {
		out = append(out, g.relationships[id])
	}
	return out
}

// ElementsOfKind returns the ids of every element of the given kind, in
// insertion order.
func (g *ModelGraph) ElementsOfKind(k kind.ElementKind) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.byKind[k]
	out := make([]elementid.ElementId, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of elements in the graph.
func (g *ModelGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.elements)
}
