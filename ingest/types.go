package ingest

import "fmt"

// ParseError reports one malformed construct found while ingesting a
// vocabulary source: a bad prefix declaration, a dangling triple, a
// malformed shape, an unresolved shared-shape reference, malformed XML,
// or an unparseable grammar rule.
type ParseError struct {
	Source  string
	Line    int
	Message string
}

func (e ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Message)
}

// TypeInfo is one class extracted from a Turtle vocabulary: its simple
// name, its declared parent (if any), and its doc comment (if any).
type TypeInfo struct {
	Name   string
	Parent string
	Doc    string
}

// PropertyShape is one OSLC property shape: the property's name, its
// predicate path, its declared value type, multiplicity bounds, and the
// shape it was inherited from (set by [shapes.ResolveSharedProperties],
// empty for directly declared properties).
type PropertyShape struct {
	Name          string
	Path          string
	ValueType     string
	MinCount      int
	MaxCount      int // -1 means unbounded
	InheritedFrom string
}

// XmiRelationshipConstraint is one Association's endpoint multiplicities,
// extracted from a second pass over the XMI metamodel.
type XmiRelationshipConstraint struct {
	Source     string
	Target     string
	SourceMult string
	TargetMult string
}

// KeywordInfo collates the string-literal keywords that appear in one
// Xtext grammar rule's body.
type KeywordInfo struct {
	RuleName string
	Keywords []string
}

// OperatorInfo is one operator-precedence rule: its name, its ordinal
// position in the grammar (precedence, lower binds looser), and its
// category (the hand-enumerated family it belongs to).
type OperatorInfo struct {
	RuleName   string
	Precedence int
	Category   string
}

// EnumInfo is one pipe-separated value enumeration extracted from an
// Xtext grammar rule, e.g. `VisibilityKind : 'public' | 'private' | 'protected' ;`.
type EnumInfo struct {
	Name   string
	Values []string
}

// TypeCoverageReport is the result of comparing the TTL-derived class set
// against the XMI-derived class set: types present in one source but not
// the other.
type TypeCoverageReport struct {
	OnlyInTTL []string
	OnlyInXMI []string
}

// EnumCoverageReport is the result of comparing an Xtext-derived
// enumeration against the corresponding JSON-schema enumeration for the
// same rule name.
type EnumCoverageReport struct {
	RuleName     string
	OnlyInXtext  []string
	OnlyInSchema []string
}
