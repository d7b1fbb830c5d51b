package resolve

import (
	"context"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/graph"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
	"github.com/sysml-go/sysml-core/qname"
)

// DefaultGlobalDepth bounds how many levels of nested namespaces the
// global scope search descends into inside a registered library package.
// The owning-namespace walks reuse it as a guard, climbing at most four
// times this many ancestors. Ten covers any realistically nested package
// structure while still terminating on a pathological input.
const DefaultGlobalDepth = 10

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	globalDepth int
}

// WithGlobalDepth overrides DefaultGlobalDepth (the library-search depth
// bound, and with it the owning-namespace walk guard).
func WithGlobalDepth(depth int) Option {
	return func(c *resolverConfig) {
		c.globalDepth = depth
	}
}

// Resolver performs one resolve pass over a [graph.ModelGraph].
type Resolver struct {
	g         *graph.ModelGraph
	collector *diag.Collector
	config    resolverConfig
}

// New constructs a Resolver bound to g, collecting diagnostics into
// collector.
func New(g *graph.ModelGraph, collector *diag.Collector, opts ...Option) *Resolver {
	cfg := resolverConfig{globalDepth: DefaultGlobalDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{
		g:         g,
		collector: collector,
		config:    cfg,
	}
}

// Resolve walks every element in insertion order, rewrites every
// catalogued reference-bearing property it carries from a textual
// qualified name to a [model.Reference], and returns summary statistics.
// It performs exactly one pass: a property is visited once regardless of
// whether it resolves.
func (r *Resolver) Resolve(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, e := range r.g.Elements() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for _, propKey := range ReferenceProperties(e.Kind()) {
			raw, ok := e.Prop(propKey)
			if !ok || raw.Kind() != model.ValueString {
				continue
			}
			entry, _ := Lookup(e.Kind(), propKey)
			if r.resolveOne(e, propKey, entry) {
				stats.ResolvedCount++
			} else {
				stats.UnresolvedCount++
			}
		}
	}
	return stats, nil
}

// resolveOne resolves a single property on e according to entry, collects
// a diagnostic on failure or kind mismatch, and patches the graph on
// success.
func (r *Resolver) resolveOne(e model.Element, propKey string, entry CatalogueEntry) bool {
	raw, _ := e.Prop(propKey)
	text, _ := raw.AsString()

	switch entry.Multiplicity {
	case Chain:
		return r.resolveChain(e, propKey, text, entry)
	default:
		return r.resolveSingle(e, propKey, text, entry)
	}
}

func (r *Resolver) resolveSingle(e model.Element, propKey, text string, entry CatalogueEntry) bool {
	qn, err := qname.ParseEscaped(text)
	if err != nil {
		r.collector.Collect(r.unresolved(e, propKey, text, nil))
		return false
	}

	target, ok := r.resolveInStrategy(e, entry.Strategy, qn)
	if !ok {
		r.collector.Collect(r.unresolved(e, propKey, text, qn.Segments()))
		return false
	}

	r.checkKindAndPatch(e, propKey, target, entry)
	return true
}

func (r *Resolver) resolveChain(e model.Element, propKey, text string, entry CatalogueEntry) bool {
	qn, err := qname.ParseEscaped(text)
	if err != nil {
		r.collector.Collect(r.unresolved(e, propKey, text, nil))
		return false
	}

	segments := qn.Segments()
	if len(segments) == 0 {
		r.collector.Collect(r.unresolved(e, propKey, text, nil))
		return false
	}

	current, ok := r.resolveInStrategy(e, OwningNamespace, qname.New(segments[0]))
	if !ok {
		r.collector.Collect(r.unresolved(e, propKey, text, segments))
		return false
	}

	for _, seg := range segments[1:] {
		next, ok := r.g.ResolveName(current, seg)
		if !ok {
			r.collector.Collect(r.unresolved(e, propKey, text, segments))
			return false
		}
		current = next
	}

	r.checkKindAndPatch(e, propKey, current, entry)
	return true
}

// checkKindAndPatch raises W010_TARGET_KIND_MISMATCH if target's kind is
// not among entry.ExpectedKinds, then rewrites the property to a
// Reference regardless (a kind mismatch is a warning, not a resolution
// failure).
func (r *Resolver) checkKindAndPatch(e model.Element, propKey string, target elementid.ElementId, entry CatalogueEntry) {
	if len(entry.ExpectedKinds) > 0 {
		targetElem, ok := r.g.GetElement(target)
		if ok && !kindMatchesAny(targetElem.Kind(), entry.ExpectedKinds) {
			r.collector.Collect(diag.NewIssue(diag.Warning, diag.W010_TARGET_KIND_MISMATCH,
				"resolved reference has an unexpected target kind").
				WithDetail("element", e.ID().String()).
				WithDetail("property", propKey).
				WithSpan(e.Span()).
				Build())
		}
	}
	r.g.SetProp(e.ID(), propKey, model.Reference(target))
}

func kindMatchesAny(k kind.ElementKind, candidates []kind.ElementKind) bool {
	for _, c := range candidates {
		if kind.IsSubtypeOf(k, c) {
			return true
		}
	}
	return false
}

// unresolved builds an E010_UNRESOLVED_REFERENCE issue, attaching a
// Jaro-Winkler "did you mean" hint when one of the target's sibling names
// is close enough to the unresolved text.
func (r *Resolver) unresolved(e model.Element, propKey, text string, segments []string) diag.Issue {
	builder := diag.NewIssue(diag.Error, diag.E010_UNRESOLVED_REFERENCE,
		"could not resolve reference \""+text+"\"").
		WithDetail("element", e.ID().String()).
		WithDetail("property", propKey).
		WithSpan(e.Span())

	candidate := text
	if len(segments) > 0 {
		candidate = segments[len(segments)-1]
	}
	if owner, ok := e.Owner(); ok {
		names := memberNames(r.g, owner)
		if hint, ok := suggest(candidate, names); ok {
			builder = builder.WithHint("did you mean \"" + hint + "\"?")
		}
	}
	return builder.Build()
}

func memberNames(g *graph.ModelGraph, namespace elementid.ElementId) []string {
	members := g.OwnedMembers(namespace)
	names := make([]string, 0, len(members))
	for _, id := range members {
		elem, ok := g.GetElement(id)
		if !ok {
			continue
		}
		if name, ok := elem.Name(); ok {
			names = append(names, name)
		}
	}
	return names
}
