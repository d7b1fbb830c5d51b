package parser

import (
	"errors"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/model"
)

// structuralErrorToIssue renders a [model.StructuralError] variant as a
// diagnostic with its S-series code and, where the graph still has the
// offending element, that element's span attached.
func structuralErrorToIssue(r *Result, structErr model.StructuralError) diag.Issue {
	builder := diag.NewIssue(diag.Error, codeFor(structErr), structErr.Error())

	if id, ok := primaryElement(structErr); ok {
		builder = builder.WithDetail("element", id.String())
		if elem, found := r.graph.GetElement(id); found {
			builder = builder.WithSpan(elem.Span())
		}
	}

	return builder.Build()
}

func codeFor(structErr model.StructuralError) diag.Code {
	switch {
	case errors.Is(structErr, model.ErrOrphanElement):
		return diag.S001_ORPHAN_ELEMENT
	case errors.Is(structErr, model.ErrOwnershipCycle):
		return diag.S002_OWNERSHIP_CYCLE
	case errors.Is(structErr, model.ErrDanglingOwningMembership):
		return diag.S003_DANGLING_OWNING_MEMBERSHIP
	case errors.Is(structErr, model.ErrInvalidOwningMembership):
		return diag.S004_INVALID_OWNING_MEMBERSHIP
	case errors.Is(structErr, model.ErrDanglingRelationshipEndpoint):
		return diag.S005_DANGLING_RELATIONSHIP_ENDPOINT
	case errors.Is(structErr, model.ErrLibraryNotRoot):
		return diag.S006_LIBRARY_NOT_ROOT
	default:
		return diag.S001_ORPHAN_ELEMENT
	}
}

// primaryElement extracts the element id most relevant to the violation,
// for attaching a span and a "element" detail to the rendered issue.
func primaryElement(structErr model.StructuralError) (elementid.ElementId, bool) {
	switch e := structErr.(type) {
	case model.OrphanElementError:
		return e.ElementID, true
	case model.DanglingOwningMembershipError:
		return e.ElementID, true
	case *model.OwnershipCycleError:
		if len(e.Cycle) > 0 {
			return e.Cycle[0], true
		}
		return elementid.ElementId{}, false
	case *model.InvalidOwningMembershipError:
		return e.ElementID, true
	case model.DanglingRelationshipEndpointError:
		return e.RelationshipID, true
	case model.LibraryNotRootError:
		return e.LibraryID, true
	default:
		return elementid.ElementId{}, false
	}
}
