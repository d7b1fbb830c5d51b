package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
)

func TestFactories_SetExpectedKind(t *testing.T) {
	cases := []struct {
		name    string
		factory func() model.Element
		want    kind.ElementKind
	}{
		{"Package", model.Package, kind.Package},
		{"LibraryPackage", model.LibraryPackage, kind.LibraryPackage},
		{"PartDefinition", model.PartDefinition, kind.PartDefinition},
		{"PartUsage", model.PartUsage, kind.PartUsage},
		{"AttributeDefinition", model.AttributeDefinition, kind.AttributeDefinition},
		{"AttributeUsage", model.AttributeUsage, kind.AttributeUsage},
		{"PortDefinition", model.PortDefinition, kind.PortDefinition},
		{"PortUsage", model.PortUsage, kind.PortUsage},
		{"ActionDefinition", model.ActionDefinition, kind.ActionDefinition},
		{"ActionUsage", model.ActionUsage, kind.ActionUsage},
		{"StateDefinition", model.StateDefinition, kind.StateDefinition},
		{"StateUsage", model.StateUsage, kind.StateUsage},
		{"ConstraintDefinition", model.ConstraintDefinition, kind.ConstraintDefinition},
		{"ConstraintUsage", model.ConstraintUsage, kind.ConstraintUsage},
		{"RequirementDefinition", model.RequirementDefinition, kind.RequirementDefinition},
		{"RequirementUsage", model.RequirementUsage, kind.RequirementUsage},
		{"ConnectionUsage", model.ConnectionUsage, kind.ConnectionUsage},
		{"InterfaceUsage", model.InterfaceUsage, kind.InterfaceUsage},
		{"OwningMembership", model.OwningMembership, kind.OwningMembership},
		{"FeatureMembership", model.FeatureMembership, kind.FeatureMembership},
		{"NamespaceImport", model.NamespaceImport, kind.NamespaceImport},
		{"MembershipImport", model.MembershipImport, kind.MembershipImport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.factory()
			assert.Equal(t, tc.want, e.Kind())
			assert.False(t, e.ID().IsZero())
		})
	}
}

func TestFactories_LeaveOtherFieldsDefaulted(t *testing.T) {
	e := model.PartDefinition()

	_, ok := e.Name()
	assert.False(t, ok)

	_, ok = e.Owner()
	assert.False(t, ok)

	_, ok = e.OwningMembership()
	assert.False(t, ok)

	assert.True(t, e.Span().IsZero())
}
