package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
)

func TestNewRelationship_AssignsIDAndEndpoints(t *testing.T) {
	source := elementid.New()
	target := elementid.New()

	r := model.NewRelationship(kind.Specialize, source, target)

	assert.False(t, r.ID().IsZero())
	assert.Equal(t, kind.Specialize, r.Kind())
	assert.Equal(t, source, r.Source())
	assert.Equal(t, target, r.Target())
}

func TestRelationship_WithProp(t *testing.T) {
	r := model.NewRelationship(kind.Satisfy, elementid.New(), elementid.New()).
		WithProp("note", model.String("derived from trace"))

	v, ok := r.Prop("note")
	assert.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "derived from trace", s)
}

func TestRelationship_WithProp_DoesNotMutateOriginal(t *testing.T) {
	base := model.NewRelationship(kind.Verify, elementid.New(), elementid.New())
	extended := base.WithProp("note", model.Bool(true))

	_, ok := base.Prop("note")
	assert.False(t, ok)

	_, ok = extended.Prop("note")
	assert.True(t, ok)
}

func TestRelationship_Props_ReturnsIndependentCopy(t *testing.T) {
	r := model.NewRelationship(kind.Satisfy, elementid.New(), elementid.New()).
		WithProp("note", model.String("first"))

	props := r.Props()
	props["note"] = model.String("mutated")

	v, ok := r.Prop("note")
	assert.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "first", s)
}

func TestRelationship_IsZero(t *testing.T) {
	var zero model.Relationship
	assert.True(t, zero.IsZero())

	r := model.NewRelationship(kind.Owning, elementid.New(), elementid.New())
	assert.False(t, r.IsZero())
}
