package graph

import (
	"log/slog"

	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/model"
)

// RegisterLibrary appends packageID to the ordered list of library roots
// and indexes the public top-level members of that package by name, so the
// resolver's Global strategy can look them up in O(1) instead of scanning
// every registered library linearly.
func (g *ModelGraph) RegisterLibrary(packageID elementid.ElementId) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.libraryPackages = append(g.libraryPackages, packageID)

	for _, child := range g.childrenByOwner[packageID] {
		e, ok := g.elements[child]
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
		if model.VisibilityOf(membership.Props()) != model.Public {
			continue
		}
		name, ok := e.Name()
		if !ok {
			continue
		}
		g.libraryIndex[name] = append(g.libraryIndex[name], child)
	}

	g.logDebug("graph.register_library", slog.String("id", packageID.String()))
}

// LibraryPackages returns the registered library roots in registration
// order.
func (g *ModelGraph) LibraryPackages() []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]elementid.ElementId, len(g.libraryPackages))
	copy(out, g.libraryPackages)
	return out
}

// LookupLibraryMember returns every library-registered public member with
// the given name, across all registered libraries, in registration order.
func (g *ModelGraph) LookupLibraryMember(name string) []elementid.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.libraryIndex[name]
	out := make([]elementid.ElementId, len(ids))
	copy(out, ids)
	return out
}
