package resolve

import "github.com/sysml-go/sysml-core/kind"

// Reference property keys. These live here rather than in model/props.go
// because they are meaningful only to the resolution pipeline: the graph
// and model packages treat them as ordinary string-valued properties until
// a [Resolver] rewrites them in place to [model.Reference] values.
const (
	// PropTypedBy holds the qualified name of a usage's declared type
	// (PartUsage -> PartDefinition, AttributeUsage -> AttributeDefinition,
	// and so on). Resolved with OwningNamespace.
	PropTypedBy = "typedBy"

	// PropSubsets holds the qualified name of a feature this one subsets.
	// Resolved with OwningNamespace.
	PropSubsets = "subsets"

	// PropRedefines holds the qualified name of a feature this one
	// redefines. Resolved with OwningNamespace.
	PropRedefines = "redefines"

	// PropSpecializes holds the qualified name of a definition this one
	// specializes. Resolved with OwningNamespace.
	PropSpecializes = "specializes"

	// PropImports holds the qualified name of a namespace or member
	// imported into the enclosing namespace. Resolved with Global.
	PropImports = "imports"

	// PropValueReference holds the qualified name referenced from a
	// FeatureReferenceExpression's value. Resolved with
	// NonExpressionNamespace, since the reference is read from inside an
	// expression but must skip the expression's own membership layer.
	PropValueReference = "valueReference"

	// PropFeatureChain holds a "::"-separated chain of segment names whose
	// segments are resolved one after another, each relative to the
	// element the previous one resolved to, rather than as a single path
	// from one scope. Resolved with FeatureChaining.
	PropFeatureChain = "featureChain"

	// PropTransitionSource holds the qualified name of a transition's
	// triggering vertex, resolved against the union of the containing
	// state definition's members and the enclosing namespace's members
	// (TransitionSpecific).
	PropTransitionSource = "transitionSource"

	// PropTransitionTarget holds the qualified name of a transition's
	// destination vertex. Resolved the same way as PropTransitionSource.
	PropTransitionTarget = "transitionTarget"
)

// CatalogueEntry describes how to resolve one (element kind, property key)
// pair: which scope strategy applies, which multiplicity the property
// holds, and which kinds a resolved target is expected to have (used to
// raise W010_TARGET_KIND_MISMATCH without rejecting the resolution).
type CatalogueEntry struct {
	Strategy      ScopeStrategy
	Multiplicity  Multiplicity
	ExpectedKinds []kind.ElementKind
}

type catalogueKey struct {
	elemKind kind.ElementKind
	propKey  string
}

// catalogue is a representative, not exhaustive, mapping of
// reference-bearing (element kind, property) pairs to their resolution
// strategy. A generator run against the full OMG normative library would
// grow this table considerably; these entries cover five of the six
// strategies end to end, and no entry uses RelativeNamespace.
var catalogue = map[catalogueKey]CatalogueEntry{
	{kind.PartUsage, PropTypedBy}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.PartDefinition},
	},
	{kind.AttributeUsage, PropTypedBy}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.AttributeDefinition},
	},
	{kind.PortUsage, PropTypedBy}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.PortDefinition},
	},
	{kind.PartDefinition, PropSpecializes}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.PartDefinition},
	},
	{kind.PartUsage, PropSubsets}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.PartUsage},
	},
	{kind.PartUsage, PropRedefines}: {
		Strategy:      OwningNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.PartUsage},
	},
	{kind.Package, PropImports}: {
		Strategy:      Global,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.Package, kind.LibraryPackage},
	},
	{kind.NamespaceImport, PropImports}: {
		Strategy:      Global,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.Package, kind.LibraryPackage, kind.Namespace},
	},
	{kind.MembershipImport, PropImports}: {
		Strategy:      Global,
		Multiplicity:  Single,
		ExpectedKinds: nil,
	},
	{kind.FeatureReferenceExpression, PropValueReference}: {
		Strategy:      NonExpressionNamespace,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.Feature},
	},
	{kind.FeatureChainExpression, PropFeatureChain}: {
		Strategy:      FeatureChaining,
		Multiplicity:  Chain,
		ExpectedKinds: []kind.ElementKind{kind.Feature},
	},
	{kind.TransitionUsage, PropTransitionSource}: {
		Strategy:      TransitionSpecific,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.StateUsage, kind.StateDefinition},
	},
	{kind.TransitionUsage, PropTransitionTarget}: {
		Strategy:      TransitionSpecific,
		Multiplicity:  Single,
		ExpectedKinds: []kind.ElementKind{kind.StateUsage, kind.StateDefinition},
	},
}

// Lookup returns the catalogue entry registered for (elemKind, propKey),
// and whether one exists.
func Lookup(elemKind kind.ElementKind, propKey string) (CatalogueEntry, bool) {
	entry, ok := catalogue[catalogueKey{elemKind: elemKind, propKey: propKey}]
	return entry, ok
}

// ReferenceProperties returns the set of property keys catalogued for
// elemKind, in no particular order.
func ReferenceProperties(elemKind kind.ElementKind) []string {
	var keys []string
	for k := range catalogue {
		if k.elemKind == elemKind {
			keys = append(keys, k.propKey)
		}
	}
	return keys
}
