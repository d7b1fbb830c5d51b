package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/sysml-core/ingest/jsonschema"
)

const visibilitySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "VisibilityKind": {
      "type": "string",
      "enum": ["public", "private", "protected"]
    },
    "FeatureDirection": {
      "type": "string",
      "enum": ["in", "out", "inout"]
    },
    "PartUsage": {
      "type": "object"
    }
  }
}`

func TestParseEnums_ExtractsNamedDefinitionEnums(t *testing.T) {
	enums, errs := jsonschema.ParseEnums("visibility.schema.json", []byte(visibilitySchema))
	require.Empty(t, errs)
	require.Len(t, enums, 2)

	byName := map[string][]string{}
	for _, e := range enums {
		byName[e.Name] = e.Values
	}
	assert.Equal(t, []string{"public", "private", "protected"}, byName["VisibilityKind"])
	assert.Equal(t, []string{"in", "out", "inout"}, byName["FeatureDirection"])
}

func TestParseEnums_SkipsDefinitionsWithoutEnum(t *testing.T) {
	enums, errs := jsonschema.ParseEnums("visibility.schema.json", []byte(visibilitySchema))
	require.Empty(t, errs)
	for _, e := range enums {
		assert.NotEqual(t, "PartUsage", e.Name)
	}
}

func TestParseEnums_RootLevelEnum(t *testing.T) {
	content := `{"type": "string", "enum": ["a", "b"]}`
	enums, errs := jsonschema.ParseEnums("flat.schema.json", []byte(content))
	require.Empty(t, errs)
	require.Len(t, enums, 1)
	assert.Equal(t, "flat.schema.json", enums[0].Name)
	assert.Equal(t, []string{"a", "b"}, enums[0].Values)
}

func TestParseEnums_MalformedJSONReportsParseError(t *testing.T) {
	_, errs := jsonschema.ParseEnums("broken.schema.json", []byte(`{not valid json`))
	require.Len(t, errs, 1)
	assert.Equal(t, "broken.schema.json", errs[0].Source)
}

func TestParseEnums_SupportsDollarDefs(t *testing.T) {
	content := `{
  "$defs": {
    "VisibilityKind": {
      "type": "string",
      "enum": ["public", "private", "protected"]
    }
  }
}`
	enums, errs := jsonschema.ParseEnums("dollar-defs.schema.json", []byte(content))
	require.Empty(t, errs)
	require.Len(t, enums, 1)
	assert.Equal(t, "VisibilityKind", enums[0].Name)
}
