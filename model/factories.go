package model

import "github.com/sysml-go/sysml-core/kind"

// Convenience factories. Each pre-sets Kind and leaves every other field
// defaulted, exactly as [New] would; they exist so call sites read as
// "a part definition" rather than "an element of kind PartDefinition".

// Package returns a new Namespace-kind element: Package.
func Package() Element { return New(kind.Package) }

// LibraryPackage returns a new LibraryPackage element.
func LibraryPackage() Element { return New(kind.LibraryPackage) }

// PartDefinition returns a new PartDefinition element.
func PartDefinition() Element { return New(kind.PartDefinition) }

// PartUsage returns a new PartUsage element.
func PartUsage() Element { return New(kind.PartUsage) }

// AttributeDefinition returns a new AttributeDefinition element.
func AttributeDefinition() Element { return New(kind.AttributeDefinition) }

// AttributeUsage returns a new AttributeUsage element.
func AttributeUsage() Element { return New(kind.AttributeUsage) }

// PortDefinition returns a new PortDefinition element.
func PortDefinition() Element { return New(kind.PortDefinition) }

// PortUsage returns a new PortUsage element.
func PortUsage() Element { return New(kind.PortUsage) }

// ActionDefinition returns a new ActionDefinition element.
func ActionDefinition() Element { return New(kind.ActionDefinition) }

// ActionUsage returns a new ActionUsage element.
func ActionUsage() Element { return New(kind.ActionUsage) }

// StateDefinition returns a new StateDefinition element.
func StateDefinition() Element { return New(kind.StateDefinition) }

// StateUsage returns a new StateUsage element.
func StateUsage() Element { return New(kind.StateUsage) }

// ConstraintDefinition returns a new ConstraintDefinition element.
func ConstraintDefinition() Element { return New(kind.ConstraintDefinition) }

// ConstraintUsage returns a new ConstraintUsage element.
func ConstraintUsage() Element { return New(kind.ConstraintUsage) }

// RequirementDefinition returns a new RequirementDefinition element.
func RequirementDefinition() Element { return New(kind.RequirementDefinition) }

// RequirementUsage returns a new RequirementUsage element.
func RequirementUsage() Element { return New(kind.RequirementUsage) }

// ConnectionUsage returns a new ConnectionUsage element.
func ConnectionUsage() Element { return New(kind.ConnectionUsage) }

// InterfaceUsage returns a new InterfaceUsage element.
func InterfaceUsage() Element { return New(kind.InterfaceUsage) }

// OwningMembership returns a new OwningMembership element.
func OwningMembership() Element { return New(kind.OwningMembership) }

// FeatureMembership returns a new FeatureMembership element.
func FeatureMembership() Element { return New(kind.FeatureMembership) }

// NamespaceImport returns a new NamespaceImport element.
func NamespaceImport() Element { return New(kind.NamespaceImport) }

// MembershipImport returns a new MembershipImport element.
func MembershipImport() Element { return New(kind.MembershipImport) }
