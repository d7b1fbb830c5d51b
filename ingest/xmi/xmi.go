// Package xmi walks UML/XMI metamodel files with an event-driven
// encoding/xml decoder. A first pass extracts the set of declared
// uml:Class names; a second pass extracts Association endpoints and
// their multiplicities as [ingest.XmiRelationshipConstraint] values.
//
// Neither pass builds a DOM — both stream tokens once, so malformed XML
// is reported as an [ingest.ParseError] rather than a panic, and large
// metamodel files never need to fit fully expanded in memory.
package xmi

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/sysml-go/sysml-core/ingest"
)

const (
	elemPackagedElement = "packagedElement"
	elemOwnedEnd        = "ownedEnd"
	elemLowerValue      = "lowerValue"
	elemUpperValue      = "upperValue"

	attrType  = "type"
	attrName  = "name"
	attrValue = "value"

	typeClass       = "uml:Class"
	typeAssociation = "uml:Association"
)

// ParseClasses extracts the set of class names declared by
// `<packagedElement xmi:type="uml:Class" name="...">` elements,
// skipping elements with an empty or underscore-prefixed name. Order is
// first-seen, with duplicates collapsed.
func ParseClasses(source, content string) ([]string, []ingest.ParseError) {
	dec := xml.NewDecoder(strings.NewReader(content))

	seen := make(map[string]bool)
	var names []string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return names, []ingest.ParseError{{
				Source:  source,
				Message: "malformed XML: " + err.Error(),
			}}
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != elemPackagedElement {
			continue
		}

		if attr(start, attrType) != typeClass {
			continue
		}
		name := attr(start, attrName)
		if name == "" || strings.HasPrefix(name, "_") {
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names, nil
}

// ParseRelationshipConstraints extracts Association endpoint
// multiplicities: for every `<packagedElement xmi:type="uml:Association">`
// with exactly two `ownedEnd` children, it emits one
// [ingest.XmiRelationshipConstraint] naming each end's referenced type and
// multiplicity bounds. Associations with a different number of ends are
// skipped rather than guessed at.
func ParseRelationshipConstraints(source, content string) ([]ingest.XmiRelationshipConstraint, []ingest.ParseError) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var constraints []ingest.XmiRelationshipConstraint
	var errs []ingest.ParseError

	var depth int
	var inAssociation bool
	var assocDepth int
	var ends []endInfo
	var endDepth int

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, ingest.ParseError{
				Source:  source,
				Message: "malformed XML: " + err.Error(),
			})
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case t.Name.Local == elemPackagedElement && attr(t, attrType) == typeAssociation:
				inAssociation = true
				assocDepth = depth
				ends = nil
			case inAssociation && t.Name.Local == elemOwnedEnd:
				ends = append(ends, endInfo{typeRef: attr(t, attrType), lower: "1", upper: "1"})
				endDepth = depth
			case inAssociation && len(ends) > 0 && depth == endDepth+1 && t.Name.Local == elemLowerValue:
				ends[len(ends)-1].lower = attr(t, attrValue)
			case inAssociation && len(ends) > 0 && depth == endDepth+1 && t.Name.Local == elemUpperValue:
				ends[len(ends)-1].upper = attr(t, attrValue)
			}
		case xml.EndElement:
			if inAssociation && depth == assocDepth {
				if len(ends) == 2 {
					constraints = append(constraints, ingest.XmiRelationshipConstraint{
						Source:     ends[0].typeRef,
						Target:     ends[1].typeRef,
						SourceMult: ends[0].multiplicityString(),
						TargetMult: ends[1].multiplicityString(),
					})
				}
				inAssociation = false
			}
			depth--
		}
	}

	return constraints, errs
}

type endInfo struct {
	typeRef string
	lower   string
	upper   string
}

func (e endInfo) multiplicityString() string {
	if e.lower == e.upper {
		return e.lower
	}
	return e.lower + ".." + e.upper
}

func attr(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
