// Package shapes parses OSLC property shape files — the same Turtle
// lexer the ttl package uses, extracting {name, path, valueType,
// minCount, maxCount} property shapes rather than class hierarchies.
//
// Shapes named "*SharedShape" are a shared-property convention: any
// other shape that references one by rdfs:subClassOf inherits its
// properties. [ResolveSharedProperties] flattens that inheritance
// closure before emission.
package shapes

import (
	"strconv"
	"strings"

	"github.com/sysml-go/sysml-core/ingest"
	"github.com/sysml-go/sysml-core/ingest/internal/turtle"
)

const (
	predName      = "oslc:name"
	predPath      = "oslc:propertyDefinition"
	predValueType = "oslc:valueType"
	predMinCount  = "oslc:occurs"
	predInherits  = "rdfs:subClassOf"

	occursZeroOrOne  = "Zero-or-one"
	occursExactlyOne = "Exactly-one"
	occursZeroOrMany = "Zero-or-many"
	occursOneOrMany  = "One-or-many"

	sharedShapeSuffix = "SharedShape"
)

// shapeGroup is one Turtle subject's accumulated predicate/object pairs,
// kept in source order.
type shapeGroup struct {
	subject string
	props   map[string][]string
}

func parseGroups(source, content string) (map[string]*shapeGroup, []string, []ingest.ParseError) {
	var errs []ingest.ParseError
	statements := turtle.Lex(content, func(line int, message string) {
		errs = append(errs, ingest.ParseError{Source: source, Line: line, Message: message})
	})

	groups := make(map[string]*shapeGroup)
	var order []string

	for _, stmt := range statements {
		if stmt.Subject == "@prefix" {
			continue
		}
		g, ok := groups[stmt.Subject]
		if !ok {
			g = &shapeGroup{subject: stmt.Subject, props: map[string][]string{}}
			groups[stmt.Subject] = g
			order = append(order, stmt.Subject)
		}
		for i, pred := range stmt.Predicate {
			g.props[pred] = append(g.props[pred], stmt.Object[i])
		}
	}

	return groups, order, errs
}

// Parse reads an OSLC shapes document and returns one [ingest.PropertyShape]
// per declared shape, along with any malformed-shape [ingest.ParseError]s.
// InheritedFrom is left empty here; call [ResolveSharedProperties] to
// flatten *SharedShape inheritance across the parsed shapes of a whole
// corpus.
func Parse(source, content string) ([]ingest.PropertyShape, []ingest.ParseError) {
	groups, order, errs := parseGroups(source, content)

	shapesOut := make([]ingest.PropertyShape, 0, len(order))
	for _, subj := range order {
		shape, ok := toPropertyShape(groups[subj])
		if !ok {
			errs = append(errs, ingest.ParseError{
				Source:  source,
				Message: "malformed shape: " + subj + " missing name or path",
			})
			continue
		}
		shapesOut = append(shapesOut, shape)
	}

	return shapesOut, errs
}

func toPropertyShape(g *shapeGroup) (ingest.PropertyShape, bool) {
	name := firstValue(g, predName)
	path := firstValue(g, predPath)
	if name == "" || path == "" {
		return ingest.PropertyShape{}, false
	}

	min, max := parseOccurs(firstValue(g, predMinCount))

	return ingest.PropertyShape{
		Name:      turtle.Unquote(name),
		Path:      turtle.LocalName(path),
		ValueType: turtle.LocalName(firstValue(g, predValueType)),
		MinCount:  min,
		MaxCount:  max,
	}, true
}

func firstValue(g *shapeGroup, pred string) string {
	vals := g.props[pred]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func parseOccurs(occurs string) (min, max int) {
	switch turtle.LocalName(occurs) {
	case occursExactlyOne:
		return 1, 1
	case occursZeroOrOne:
		return 0, 1
	case occursOneOrMany:
		return 1, -1
	case occursZeroOrMany:
		return 0, -1
	default:
		if n, err := strconv.Atoi(occurs); err == nil {
			return n, n
		}
		return 0, -1
	}
}

// ResolveSharedProperties flattens the *SharedShape inheritance closure:
// for every shape whose rdfs:subClassOf names a shape ending in
// "SharedShape", that shared shape's own property is appended to the
// output with InheritedFrom set to the shared shape's name, alongside
// the inheriting shape's directly declared property. A shape whose own
// name ends in "SharedShape" is not emitted on its own; its property
// appears only as an inherited copy.
func ResolveSharedProperties(source, content string) ([]ingest.PropertyShape, []ingest.ParseError) {
	groups, order, errs := parseGroups(source, content)

	byLocalName := make(map[string]*shapeGroup, len(order))
	for _, subj := range order {
		byLocalName[turtle.LocalName(subj)] = groups[subj]
	}

	resolved := make([]ingest.PropertyShape, 0, len(order))
	for _, subj := range order {
		g := groups[subj]
		shape, ok := toPropertyShape(g)
		if !ok {
			errs = append(errs, ingest.ParseError{
				Source:  source,
				Message: "malformed shape: " + subj + " missing name or path",
			})
			continue
		}
		if strings.HasSuffix(turtle.LocalName(subj), sharedShapeSuffix) {
			continue
		}
		resolved = append(resolved, shape)

		parentLocal, hasParent := sharedParentOf(g)
		if !hasParent {
			continue
		}
		sharedGroup, ok := byLocalName[parentLocal]
		if !ok {
			errs = append(errs, ingest.ParseError{
				Source:  source,
				Message: "unresolved shared-shape reference: " + parentLocal,
			})
			continue
		}
		sharedShape, ok := toPropertyShape(sharedGroup)
		if !ok {
			continue
		}
		sharedShape.InheritedFrom = parentLocal
		resolved = append(resolved, sharedShape)
	}

	return resolved, errs
}

func sharedParentOf(g *shapeGroup) (string, bool) {
	for _, obj := range g.props[predInherits] {
		local := turtle.LocalName(obj)
		if strings.HasSuffix(local, sharedShapeSuffix) {
			return local, true
		}
	}
	return "", false
}
