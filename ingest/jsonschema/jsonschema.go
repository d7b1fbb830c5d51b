// Package jsonschema reads the OMG-published JSON schemas that describe
// enumerations and relationship constraints, using
// [github.com/google/jsonschema-go/jsonschema]'s [jsonschema.Schema]
// type as the decoding target rather than hand-rolling a schema struct.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"sort"

	gojsonschema "github.com/google/jsonschema-go/jsonschema"

	"github.com/sysml-go/sysml-core/ingest"
)

// ParseEnums decodes a JSON schema document and returns one
// [ingest.EnumInfo] per named definition (from either `definitions` or
// `$defs`, and the root schema itself if it declares `enum` directly)
// whose schema carries a non-empty `enum` array. Values are coerced to
// their string representation; schemas enumerating non-string values are
// still reported, since the coverage comparison only cares about the set
// of literal tokens.
func ParseEnums(source string, content []byte) ([]ingest.EnumInfo, []ingest.ParseError) {
	var schema gojsonschema.Schema
	if err := json.Unmarshal(content, &schema); err != nil {
		return nil, []ingest.ParseError{{Source: source, Message: "malformed JSON schema: " + err.Error()}}
	}

	var result []ingest.EnumInfo

	if values := stringifyEnum(schema.Enum); len(values) > 0 {
		result = append(result, ingest.EnumInfo{Name: source, Values: values})
	}

	names := make([]string, 0, len(schema.Definitions)+len(schema.Defs))
	defs := make(map[string]*gojsonschema.Schema, len(schema.Definitions)+len(schema.Defs))
	for name, def := range schema.Definitions {
		names = append(names, name)
		defs[name] = def
	}
	for name, def := range schema.Defs {
		if _, exists := defs[name]; exists {
			continue
		}
		names = append(names, name)
		defs[name] = def
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		if def == nil {
			continue
		}
		values := stringifyEnum(def.Enum)
		if len(values) == 0 {
			continue
		}
		result = append(result, ingest.EnumInfo{Name: name, Values: values})
	}

	return result, nil
}

func stringifyEnum(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}
