package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/sysml-core/kind"
)

func TestAllRelationshipKinds_NamesMatchSpec(t *testing.T) {
	want := []string{
		"Owning", "TypeOf", "Specialize", "Subsetting", "Redefine",
		"Satisfy", "Verify", "Derive", "Trace", "Reference", "Flow", "Transition",
	}
	got := make([]string, 0, len(want))
	for _, rk := range kind.AllRelationshipKinds() {
		got = append(got, rk.String())
	}
	assert.ElementsMatch(t, want, got)
}

func TestRelationshipKindByName_RoundTrip(t *testing.T) {
	for _, rk := range kind.AllRelationshipKinds() {
		found, ok := kind.RelationshipKindByName(rk.String())
		require.True(t, ok)
		assert.Equal(t, rk, found)
	}
}

func TestRelationshipKindByName_Unknown(t *testing.T) {
	_, ok := kind.RelationshipKindByName("NotARelationship")
	assert.False(t, ok)
}

func TestRelationshipKind_IsValid(t *testing.T) {
	assert.True(t, kind.Owning.IsValid())
	invalid := kind.RelationshipKind(200)
	assert.False(t, invalid.IsValid())
}
