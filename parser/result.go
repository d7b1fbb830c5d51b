package parser

import (
	"context"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/graph"
	"github.com/sysml-go/sysml-core/model"
	"github.com/sysml-go/sysml-core/resolve"
)

// Result is the output of a [Parser.Parse] call: the graph it built and
// the diagnostics it collected. A zero Result is not usable; obtain one
// from [Parser.Parse] or [NewResult].
type Result struct {
	graph     *graph.ModelGraph
	collector *diag.Collector
}

// Graph returns the underlying model graph.
func (r Result) Graph() *graph.ModelGraph { return r.graph }

// Collector returns the diagnostics collector accumulated so far across
// parsing, resolution, and validation.
func (r Result) Collector() *diag.Collector { return r.collector }

// Resolve runs the cross-reference resolver over the graph, collecting
// any resolution diagnostics into r's collector, and returns the
// resulting statistics.
func (r Result) Resolve(ctx context.Context, opts ...resolve.Option) (resolve.Stats, error) {
	return resolve.New(r.graph, r.collector, opts...).Resolve(ctx)
}

// ValidateStructure reports ownership-graph invariant violations (orphan
// elements, ownership cycles, dangling or malformed owning memberships,
// libraries that are not roots).
func (r Result) ValidateStructure() []model.StructuralError {
	return graph.ValidateStructure(r.graph)
}

// ValidateRelationships reports first-class Relationship endpoints that
// do not exist in the graph.
func (r Result) ValidateRelationships() []model.StructuralError {
	return graph.ValidateRelationships(r.graph)
}

// IntoResolved runs [Result.Resolve] and returns r unchanged (the graph
// and collector are mutated in place; resolution diagnostics land in the
// same collector parsing used). The returned error is a context error
// only — resolution failures themselves are diagnostics, not errors.
func (r Result) IntoResolved(ctx context.Context, opts ...resolve.Option) (Result, error) {
	_, err := r.Resolve(ctx, opts...)
	return r, err
}

// IntoValidated runs both structural and relationship validation and
// folds any violations into r's collector as S-series diagnostics, then
// returns r. Like IntoResolved, validation failures are diagnostics, not
// a returned error.
func (r Result) IntoValidated() Result {
	for _, structErr := range r.ValidateStructure() {
		r.collector.Collect(structuralErrorToIssue(&r, structErr))
	}
	for _, relErr := range r.ValidateRelationships() {
		r.collector.Collect(structuralErrorToIssue(&r, relErr))
	}
	return r
}
