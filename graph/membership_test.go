package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/sysml-core/graph"
	"github.com/sysml-go/sysml-core/model"
)

func TestOwnedMembers_ExcludesMembershipPlumbing(t *testing.T) {
	g := graph.New()
	pkg := g.AddElement(model.Package().WithName("Vehicles"))
	part := g.AddOwnedElement(model.PartDefinition().WithName("Engine"), pkg, model.Public)

	members := g.OwnedMembers(pkg)
	require.Len(t, members, 1)
	assert.Equal(t, part, members[0])
}

func TestOwnedMembers_IncludesPrivate(t *testing.T) {
	g := graph.New()
	pkg := g.AddElement(model.Package().WithName("Vehicles"))
	priv := g.AddOwnedElement(model.PartDefinition().WithName("internal"), pkg, model.Private)

	members := g.OwnedMembers(pkg)
	assert.Contains(t, members, priv)
}

func TestVisibleMembers_FiltersPrivate(t *testing.T) {
	g := graph.New()
	pkg := g.AddElement(model.Package().WithName("Vehicles"))
	pub := g.AddOwnedElement(model.PartDefinition().WithName("Engine"), pkg, model.Public)
	priv := g.AddOwnedElement(model.PartDefinition().WithName("internal"), pkg, model.Private)

	visible := g.VisibleMembers(pkg)
	assert.Contains(t, visible, pub)
	assert.NotContains(t, visible, priv)
}

func TestImportsOf_ReturnsOnlyImportSubtypeChildren(t *testing.T) {
	g := graph.New()
	pkg := g.AddElement(model.Package().WithName("Vehicles"))
	part := g.AddOwnedElement(model.PartDefinition().WithName("Engine"), pkg, model.Public)
	imp := g.AddElement(model.NamespaceImport().WithOwner(pkg).
		WithProp(model.PropVisibility, model.String(string(model.Public))))

	imports := g.ImportsOf(pkg)
	require.Len(t, imports, 1)
	assert.Equal(t, imp, imports[0])
	assert.NotContains(t, g.OwnedMembers(pkg), imp)
	assert.NotContains(t, imports, part)
}

func TestOwnedMembers_InsertionOrder(t *testing.T) {
	g := graph.New()
	pkg := g.AddElement(model.Package().WithName("Vehicles"))
	first := g.AddOwnedElement(model.PartDefinition().WithName("A"), pkg, model.Public)
	second := g.AddOwnedElement(model.PartDefinition().WithName("B"), pkg, model.Public)

	members := g.OwnedMembers(pkg)
	require.Len(t, members, 2)
	assert.Equal(t, first, members[0])
	assert.Equal(t, second, members[1])
}
