// Package ttl parses Turtle vocabulary files into [ingest.TypeInfo]
// values: one per rdfs:Class resource, with its rdfs:subClassOf parent
// and rdfs:label/rdfs:comment documentation.
package ttl

import (
	"github.com/sysml-go/sysml-core/ingest"
	"github.com/sysml-go/sysml-core/ingest/internal/turtle"
)

const (
	predType        = "rdf:type"
	objectClass     = "rdfs:Class"
	predSubClassOf  = "rdfs:subClassOf"
	predLabel       = "rdfs:label"
	predComment     = "rdfs:comment"
	subjectPrefix   = "@prefix"
)

// Parse reads Turtle content and returns one [ingest.TypeInfo] per
// resource declared `a rdfs:Class`, plus any [ingest.ParseError]s for
// malformed prefix declarations or dangling triples encountered along
// the way. Parsing never stops at the first error: every well-formed
// statement still contributes its TypeInfo.
func Parse(source, content string) ([]ingest.TypeInfo, []ingest.ParseError) {
	var errs []ingest.ParseError
	statements := turtle.Lex(content, func(line int, message string) {
		errs = append(errs, ingest.ParseError{Source: source, Line: line, Message: message})
	})

	byName := make(map[string]*ingest.TypeInfo)
	var order []string

	for _, stmt := range statements {
		if stmt.Subject == subjectPrefix {
			continue
		}

		isClass := false
		for i, pred := range stmt.Predicate {
			if pred == predType && stmt.Object[i] == objectClass {
				isClass = true
			}
		}
		if !isClass {
			continue
		}

		name := turtle.LocalName(stmt.Subject)
		info, ok := byName[name]
		if !ok {
			info = &ingest.TypeInfo{Name: name}
			byName[name] = info
			order = append(order, name)
		}

		for i, pred := range stmt.Predicate {
			switch pred {
			case predSubClassOf:
				info.Parent = turtle.LocalName(stmt.Object[i])
			case predLabel:
				info.Doc = turtle.Unquote(stmt.Object[i])
			case predComment:
				if info.Doc == "" {
					info.Doc = turtle.Unquote(stmt.Object[i])
				}
			}
		}
	}

	types := make([]ingest.TypeInfo, 0, len(order))
	for _, name := range order {
		types = append(types, *byName[name])
	}
	return types, errs
}
