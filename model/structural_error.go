package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
)

// StructuralError is the sealed set of invariant violations a graph can
// report: OrphanElementError, *OwnershipCycleError,
// DanglingOwningMembershipError, *InvalidOwningMembershipError, and
// DanglingRelationshipEndpointError. Match a specific variant with
// errors.As(); match the invariant family with errors.Is() against the
// corresponding Err* sentinel.
type StructuralError interface {
	error
	structuralError()
}

// ErrOrphanElement is the sentinel matched by errors.Is(err,
// ErrOrphanElement) for any OrphanElementError: a non-root element with
// neither an owner nor an owning membership. Package-kind elements are
// exempt, see [IsRootExempt].
var ErrOrphanElement = errors.New("model: element has no owner and is not a root")

// OrphanElementError reports the specific element that violates the
// orphan-element invariant.
type OrphanElementError struct {
	ElementID elementid.ElementId
}

func (e OrphanElementError) Error() string {
	return fmt.Sprintf("model: element %s has no owner and is not a root", e.ElementID)
}

func (e OrphanElementError) Is(target error) bool { return target == ErrOrphanElement }
func (OrphanElementError) structuralError()       {}

// ErrDanglingOwningMembership is the sentinel matched by errors.Is(err,
// ErrDanglingOwningMembership) for any DanglingOwningMembershipError.
var ErrDanglingOwningMembership = errors.New("model: owning membership does not resolve to an element in the graph")

// DanglingOwningMembershipError reports an element whose owning membership
// id does not resolve to any element in the graph.
type DanglingOwningMembershipError struct {
	ElementID    elementid.ElementId
	MembershipID elementid.ElementId
}

func (e DanglingOwningMembershipError) Error() string {
	return fmt.Sprintf("model: element %s has owning membership %s, which does not exist in the graph",
		e.ElementID, e.MembershipID)
}

func (e DanglingOwningMembershipError) Is(target error) bool {
	return target == ErrDanglingOwningMembership
}
func (DanglingOwningMembershipError) structuralError() {}

// ErrOwnershipCycle is the sentinel matched by errors.Is(err,
// ErrOwnershipCycle) for any *OwnershipCycleError.
var ErrOwnershipCycle = errors.New("model: ownership cycle")

// OwnershipCycleError reports a cycle in the owner chain: following Owner()
// repeatedly returns to an id already visited before reaching a root.
type OwnershipCycleError struct {
	Cycle []elementid.ElementId
}

func (e *OwnershipCycleError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		names[i] = id.String()
	}
	return fmt.Sprintf("model: ownership cycle: %s", strings.Join(names, " -> "))
}

func (e *OwnershipCycleError) Is(target error) bool { return target == ErrOwnershipCycle }
func (*OwnershipCycleError) structuralError()       {}

// ErrInvalidOwningMembership is the sentinel matched by errors.Is(err,
// ErrInvalidOwningMembership) for any *InvalidOwningMembershipError.
var ErrInvalidOwningMembership = errors.New("model: invalid owning membership kind")

// InvalidOwningMembershipError reports that an element's owning membership
// resolves to an element, but that element is not a Membership subtype.
type InvalidOwningMembershipError struct {
	ElementID      elementid.ElementId
	MembershipKind kind.ElementKind
}

func (e *InvalidOwningMembershipError) Error() string {
	return fmt.Sprintf("model: element %s has owning membership of kind %s, which is not a Membership",
		e.ElementID, e.MembershipKind)
}

func (e *InvalidOwningMembershipError) Is(target error) bool {
	return target == ErrInvalidOwningMembership
}
func (*InvalidOwningMembershipError) structuralError() {}

// ErrDanglingRelationshipEndpoint is the sentinel matched by errors.Is(err,
// ErrDanglingRelationshipEndpoint) for any DanglingRelationshipEndpointError.
var ErrDanglingRelationshipEndpoint = errors.New("model: relationship endpoint does not resolve to an element in the graph")

// DanglingRelationshipEndpointError reports a relationship whose source or
// target id does not resolve to any element in the graph.
type DanglingRelationshipEndpointError struct {
	RelationshipID elementid.ElementId
	EndpointID     elementid.ElementId
	IsSource       bool
}

func (e DanglingRelationshipEndpointError) Error() string {
	end := "target"
	if e.IsSource {
		end = "source"
	}
	return fmt.Sprintf("model: relationship %s has %s %s, which does not exist in the graph",
		e.RelationshipID, end, e.EndpointID)
}

func (e DanglingRelationshipEndpointError) Is(target error) bool {
	return target == ErrDanglingRelationshipEndpoint
}
func (DanglingRelationshipEndpointError) structuralError() {}

// ErrLibraryNotRoot is the sentinel matched by errors.Is(err,
// ErrLibraryNotRoot) for any LibraryNotRootError.
var ErrLibraryNotRoot = errors.New("model: registered library package is not a root")

// LibraryNotRootError reports a registered library package that has an
// owner: invariant 5 requires every library package to be a root.
type LibraryNotRootError struct {
	LibraryID elementid.ElementId
}

func (e LibraryNotRootError) Error() string {
	return fmt.Sprintf("model: library package %s is registered but is not a root", e.LibraryID)
}

func (e LibraryNotRootError) Is(target error) bool { return target == ErrLibraryNotRoot }
func (LibraryNotRootError) structuralError()       {}

// IsRootExempt reports whether k is exempt from the orphan-element check:
// currently only Package, which is the only kind allowed to be a root with
// no owning membership.
func IsRootExempt(k kind.ElementKind) bool {
	return k == kind.Package
}
