// Package ingest is the batch code-generation front end: it reads the
// four normative artifact families that define the SysML v2 vocabulary
// (Turtle files carrying class hierarchies and OSLC property shapes, XMI
// class/relationship metamodels, Xtext grammar rule files, and OMG JSON
// schemas) and turns
// them into language-neutral tables — types, property shapes, keyword
// and operator tables, relationship constraints — that seed the
// catalogue `cmd/sysml-codegen` writes to disk.
//
// Each format has its own sub-package (ttl, shapes, xmi, xtext,
// jsonschema); this package holds the types shared across all of them
// ([ParseError], [TypeInfo]) and [ValidateAll], the cross-validation pass
// that compares what the different sources say about the same vocabulary
// and reports anything that doesn't line up.
//
// None of these parsers ever panics on malformed input: every failure is
// a [ParseError] value, collected and returned alongside whatever could
// still be extracted.
package ingest
