package parser

import (
	"context"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/graph"
)

// Parser turns a set of source files into a [Result]. The ingest/*
// packages do not implement it; they expose format-specific extraction
// functions instead. Parse must never panic on malformed input — anything
// it cannot make sense of is reported through the returned Result's
// collector.
type Parser interface {
	// Parse reads files and populates a fresh [graph.ModelGraph]. It does
	// not resolve cross-references or validate structural invariants;
	// call [Result.IntoResolved] / [Result.IntoValidated] for that.
	Parse(ctx context.Context, files []File) (Result, error)

	// Name identifies the front end for diagnostics and generated
	// catalogue provenance (e.g. "ttl", "shapes", "xmi", "xtext", "jsonschema").
	Name() string

	// Version is the front end's own format/grammar version, not this
	// module's version.
	Version() string
}

// NewResult wraps a populated graph and collector produced by a Parser
// implementation. Front ends construct a Result this way rather than by
// struct literal so the zero value stays unusable.
func NewResult(g *graph.ModelGraph, collector *diag.Collector) Result {
	return Result{graph: g, collector: collector}
}
