package resolve

import (
	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/elementid"
	"github.com/sysml-go/sysml-core/graph"
	"github.com/sysml-go/sysml-core/kind"
	"github.com/sysml-go/sysml-core/model"
	"github.com/sysml-go/sysml-core/qname"
)

// resolveInStrategy dispatches a single qualified-name lookup to the scope
// walk named by strategy, relative to e.
func (r *Resolver) resolveInStrategy(e model.Element, strategy ScopeStrategy, qn qname.QualifiedName) (elementid.ElementId, bool) {
	switch strategy {
	case NonExpressionNamespace:
		ns, ok := r.skipExpressionAncestors(e)
		return r.owningWalk(e, ns, ok, qn)
	case RelativeNamespace:
		ns, ok := e.Owner()
		if !ok {
			return elementid.ElementId{}, false
		}
		if len(qn.Segments()) == 1 {
			target, status, _ := r.resolveSegment(ns, qn.SimpleName(), true)
			return target, status != NotFound
		}
		return r.g.ResolvePath(ns, qn)
	case TransitionSpecific:
		return r.transitionScope(e, qn)
	case Global:
		return r.globalScope(qn)
	case OwningNamespace, FeatureChaining:
		ns, ok := e.Owner()
		return r.owningWalk(e, ns, ok, qn)
	default:
		ns, ok := e.Owner()
		return r.owningWalk(e, ns, ok, qn)
	}
}

// owningWalk tries qn against ns and each successive ancestor namespace,
// falling through to the global scope if nothing owned, inherited, or
// imported matches anywhere along the chain. Single-segment names get the
// full owned/inherited/imported treatment per segment (owningWalkSingle);
// multi-segment paths fall back to the plain owned/inherited fold, since
// import expansion for a dotted qualified name is not exercised by any
// cited scenario.
func (r *Resolver) owningWalk(e model.Element, ns elementid.ElementId, ok bool, qn qname.QualifiedName) (elementid.ElementId, bool) {
	if len(qn.Segments()) == 1 {
		return r.owningWalkSingle(e, ns, ok, qn)
	}

	steps := 0
	for ok && steps < r.config.globalDepth*4 {
		if target, found := r.g.ResolvePath(ns, qn); found {
			return target, true
		}
		ns, ok = r.g.OwnerOf(ns)
		steps++
	}
	return r.globalScope(qn)
}

// owningWalkSingle resolves a single-segment name against ns and each
// successive ancestor namespace. At each level it tries owned and
// inherited members first (graph.ResolveName), then that namespace's
// owned Import/NamespaceImport/MembershipImport children, before climbing
// to the parent. Private imports contribute only at the walk's starting
// namespace (steps == 0); once the walk climbs to an ancestor, only
// public imports are followed — matching the "private import does not
// contribute to indirect lookup" rule. A level matching more than one
// imported candidate raises W011_AMBIGUOUS_REFERENCE but still resolves
// deterministically to the first candidate found.
func (r *Resolver) owningWalkSingle(e model.Element, ns elementid.ElementId, ok bool, qn qname.QualifiedName) (elementid.ElementId, bool) {
	name := qn.SimpleName()
	steps := 0
	for ok && steps < r.config.globalDepth*4 {
		if target, status, count := r.resolveSegment(ns, name, steps == 0); status != NotFound {
			if status == Ambiguous {
				r.collector.Collect(diag.NewIssue(diag.Warning, diag.W011_AMBIGUOUS_REFERENCE,
					"reference \""+name+"\" matched more than one imported candidate in the same scope layer").
					WithDetail("element", e.ID().String()).
					WithDetail("namespace", ns.String()).
					WithDetails(diag.AmbiguousCandidates(count, target.String())...).
					WithSpan(e.Span()).
					Build())
			}
			return target, true
		}
		ns, ok = r.g.OwnerOf(ns)
		steps++
	}
	return r.globalScope(qn)
}

// resolveSegment looks up name directly in ns, first via owned/inherited
// members, then by expanding ns's owned imports. It returns the number of
// imported candidates found so the caller can build an ambiguity
// diagnostic; a single owned/inherited match is never reported as
// ambiguous even if multiple imports would also have matched, since owned
// and inherited members take priority over imported ones.
func (r *Resolver) resolveSegment(ns elementid.ElementId, name string, direct bool) (elementid.ElementId, ScopedResolution, int) {
	if target, ok := r.g.ResolveName(ns, name); ok {
		return target, Found, 1
	}

	var candidates []elementid.ElementId
	for _, impID := range r.g.ImportsOf(ns) {
		impElem, ok := r.g.GetElement(impID)
		if !ok {
			continue
		}
		if !direct && model.VisibilityOf(impElem.Props()) != model.Public {
			continue
		}
		candidates = append(candidates, r.importCandidates(impElem, name)...)
	}

	switch len(candidates) {
	case 0:
		return elementid.ElementId{}, NotFound, 0
	case 1:
		return candidates[0], Found, 1
	default:
		return candidates[0], Ambiguous, len(candidates)
	}
}

// importCandidates expands a single Import-kind element looking for name:
// a NamespaceImport contributes every visible member of the imported
// namespace with that name, a MembershipImport contributes its single
// target if that target's own name matches.
func (r *Resolver) importCandidates(imp model.Element, name string) []elementid.ElementId {
	target, ok := r.importTarget(imp)
	if !ok {
		return nil
	}

	switch {
	case kind.IsSubtypeOf(imp.Kind(), kind.NamespaceImport):
		var out []elementid.ElementId
		for _, id := range r.g.VisibleMembers(target) {
			member, ok := r.g.GetElement(id)
			if !ok {
				continue
			}
			if memberName, hasName := member.Name(); hasName && memberName == name {
				out = append(out, id)
			}
		}
		return out
	case kind.IsSubtypeOf(imp.Kind(), kind.MembershipImport):
		targetElem, ok := r.g.GetElement(target)
		if !ok {
			return nil
		}
		if targetName, hasName := targetElem.Name(); hasName && targetName == name {
			return []elementid.ElementId{target}
		}
		return nil
	default:
		return nil
	}
}

// importTarget resolves imp's PropImports property to an element id,
// whether the resolver has already patched it to a Reference earlier in
// the current pass or it is still the raw qualified-name string:
// iteration order over r.g.Elements() is insertion order, not dependency
// order, so an Import element's own target may not be resolved yet when
// another element's owningWalk needs to expand it.
func (r *Resolver) importTarget(imp model.Element) (elementid.ElementId, bool) {
	raw, ok := imp.Prop(PropImports)
	if !ok {
		return elementid.ElementId{}, false
	}
	if ref, ok := raw.AsReference(); ok {
		return ref, true
	}
	text, ok := raw.AsString()
	if !ok {
		return elementid.ElementId{}, false
	}
	qn, err := qname.ParseEscaped(text)
	if err != nil {
		return elementid.ElementId{}, false
	}
	return r.globalScope(qn)
}

// skipExpressionAncestors climbs past e's owner while that owner is itself
// an expression-kind element, or is owned through a FeatureValue
// membership, so a reference read from inside a nested expression is
// scoped against the first stable declaration namespace rather than the
// expression's own transient membership layer.
func (r *Resolver) skipExpressionAncestors(e model.Element) (elementid.ElementId, bool) {
	ns, ok := e.Owner()
	for ok {
		ownerElem, found := r.g.GetElement(ns)
		if !found {
			return ns, ok
		}
		if ownershipIsFeatureValue(r.g, ownerElem) || kind.IsSubtypeOf(ownerElem.Kind(), kind.Expression) {
			ns, ok = r.g.OwnerOf(ns)
			continue
		}
		return ns, ok
	}
	return ns, ok
}

func ownershipIsFeatureValue(g *graph.ModelGraph, e model.Element) bool {
	membershipID, ok := e.OwningMembership()
	if !ok {
		return false
	}
	membership, ok := g.GetElement(membershipID)
	if !ok {
		return false
	}
	return membership.Kind() == kind.FeatureValue
}

// globalScope resolves name against root packages first (the package
// itself, or one of its direct members, by simple name — root-package
// lookup does not recurse), then against library packages (which do
// recurse, depth-bounded).
func (r *Resolver) globalScope(qn qname.QualifiedName) (elementid.ElementId, bool) {
	name := qn.SimpleName()
	if name == "" {
		return elementid.ElementId{}, false
	}

	for _, root := range r.g.Roots() {
		rootElem, ok := r.g.GetElement(root)
		if !ok || !kind.IsSubtypeOf(rootElem.Kind(), kind.Package) {
			continue
		}
		if rootName, hasName := rootElem.Name(); hasName && rootName == name {
			return root, true
		}
		if target, ok := r.g.ResolveName(root, name); ok {
			return target, true
		}
	}

	for _, lib := range r.g.LibraryPackages() {
		if libElem, ok := r.g.GetElement(lib); ok {
			if libName, hasName := libElem.Name(); hasName && libName == name {
				return lib, true
			}
		}
		if target, ok := r.searchLibraryRecursively(lib, name, 0); ok {
			return target, true
		}
	}

	return elementid.ElementId{}, false
}

// searchLibraryRecursively walks namespace's owned members looking for
// name, descending into nested namespace- or package-kind members up to
// r.config.globalDepth levels.
func (r *Resolver) searchLibraryRecursively(namespace elementid.ElementId, name string, depth int) (elementid.ElementId, bool) {
	if depth > r.config.globalDepth {
		return elementid.ElementId{}, false
	}

	for _, id := range r.g.OwnedMembers(namespace) {
		member, ok := r.g.GetElement(id)
		if !ok {
			continue
		}
		if memberName, hasName := member.Name(); hasName && memberName == name {
			return id, true
		}
		if kind.IsSubtypeOf(member.Kind(), kind.Namespace) || member.Kind() == kind.Package {
			if target, ok := r.searchLibraryRecursively(id, name, depth+1); ok {
				return target, true
			}
		}
	}

	return elementid.ElementId{}, false
}

// transitionScope unions the enclosing namespace's members with the
// containing state definition's members and resolves name against that
// union. A match present under more than one of those namespaces raises
// W012_TRANSITION_SCOPE_CONFLICT but still resolves deterministically to
// the first namespace searched.
func (r *Resolver) transitionScope(e model.Element, qn qname.QualifiedName) (elementid.ElementId, bool) {
	name := qn.SimpleName()
	if name == "" {
		return elementid.ElementId{}, false
	}

	var namespaces []elementid.ElementId
	if owner, ok := e.Owner(); ok {
		namespaces = append(namespaces, owner)
		if grandparent, ok := r.g.OwnerOf(owner); ok {
			namespaces = append(namespaces, grandparent)
		}
	}

	var found elementid.ElementId
	matches := 0
	for _, ns := range namespaces {
		if target, ok := r.g.ResolveName(ns, name); ok {
			if matches == 0 {
				found = target
			}
			matches++
		}
	}

	if matches == 0 {
		return elementid.ElementId{}, false
	}
	if matches > 1 {
		r.collector.Collect(diag.NewIssue(diag.Warning, diag.W012_TRANSITION_SCOPE_CONFLICT,
			"transition scope union matched \""+name+"\" in more than one namespace").
			WithDetail("element", e.ID().String()).
			WithSpan(e.Span()).
			Build())
	}
	return found, true
}
