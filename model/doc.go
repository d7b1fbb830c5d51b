// Package model defines the tagged element and relationship data model:
// Element, Relationship, the Value property sum type, structural
// invariants, and the fluent builder used to construct graph-ready values
// before insertion.
//
// Elements and relationships are immutable value types constructed through
// factories ([Package], [PartDefinition], ...) or the generic [New]
// constructor, then refined with With* builder methods before being handed
// to a graph for insertion. Nothing in this package mutates a value in
// place; every With* method returns a new Element.
package model
