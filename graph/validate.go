package graph

import (
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
)

// ValidateStructure checks the ownership invariants against the current
// state of g and returns every violation found; the graph itself is never
// auto-repaired. It covers:
//
//  1. every element with neither an owner nor an owning_membership is of a
//     root-exempt kind (see model.IsRootExempt); an element that has an
//     owner but no owning_membership is not reported
//  2. owning_membership resolves to an existing element
//  3. the resolved owning_membership element is a Membership subtype
//  4. the ownership relation is acyclic
//  5. every registered library package is itself a root
func ValidateStructure(g *ModelGraph) []model.StructuralError {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []model.StructuralError

	for _, id := range g.elementOrder {
		e := g.elements[id]

		_, hasOwner := e.Owner()
		membershipID, hasMembership := e.OwningMembership()

		if !hasOwner && !hasMembership {
			if !model.IsRootExempt(e.Kind()) {
				errs = append(errs, model.OrphanElementError{ElementID: id})
			}
			continue
		}

		if hasMembership {
			membership, ok := g.elements[membershipID]
			if !ok {
				errs = append(errs, model.DanglingOwningMembershipError{ElementID: id, MembershipID: membershipID})
			} else if !kind.IsSubtypeOf(membership.Kind(), kind.Membership) {
				errs = append(errs, &model.InvalidOwningMembershipError{ElementID: id, MembershipKind: membership.Kind()})
			}
		}
	}

	if cyc := g.findOwnershipCycle(); cyc != nil {
		errs = append(errs, cyc)
	}

	for _, lib := range g.libraryPackages {
		if e, ok := g.elements[lib]; ok {
			if _, hasOwner := e.Owner(); hasOwner {
				errs = append(errs, model.LibraryNotRootError{LibraryID: lib})
			}
		}
	}

	return errs
}

// findOwnershipCycle performs a single DFS over the owner graph and
// returns the first cycle found, or nil. Caller must hold g.mu (read or
// write).
func (g *ModelGraph) findOwnershipCycle() *model.OwnershipCycleError {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[elementid.ElementId]int, len(g.elements))
	var path []elementid.ElementId

	var visit func(id elementid.ElementId) *model.OwnershipCycleError
	visit = func(id elementid.ElementId) *model.OwnershipCycleError {
		switch state[id] {
		case visiting:
			cycleStart := 0
			for i, p := range path {
				if p == id {
					cycleStart = i
					break
				}
			}
			cycle := append([]elementid.ElementId{}, path[cycleStart:]...)
			cycle = append(cycle, id)
			return &model.OwnershipCycleError{Cycle: cycle}
		case done:
			return nil
		}

		state[id] = visiting
		path = append(path, id)

		if e, ok := g.elements[id]; ok {
			if owner, ok := e.Owner(); ok {
				if err := visit(owner); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		state[id] = done
		return nil
	}

	for _, id := range g.elementOrder {
		if state[id] == unvisited {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateRelationships checks that every relationship's source and target
// refer to existing elements.
func ValidateRelationships(g *ModelGraph) []model.StructuralError {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []model.StructuralError
	for _, id := range g.relationshipOrder {
		r := g.relationships[id]
		if _, ok := g.elements[r.Source()]; !ok {
			errs = append(errs, model.DanglingRelationshipEndpointError{
				RelationshipID: id, EndpointID: r.Source(), IsSource: true,
			})
		}
		if _, ok := g.elements[r.Target()]; !ok {
			errs = append(errs, model.DanglingRelationshipEndpointError{
				RelationshipID: id, EndpointID: r.Target(), IsSource: false,
			})
		}
	}
	return errs
}
