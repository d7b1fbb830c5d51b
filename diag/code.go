package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// component that emits it. Most codes are emitted exclusively by their
// category's component, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryIngestion is for spec-ingestion (TTL/OSLC/XMI/Xtext/JSON-schema) errors.
	CategoryIngestion

	// CategoryStructural is for model-graph invariant violations.
	CategoryStructural

	// CategoryResolution is for cross-reference resolution diagnostics.
	CategoryResolution

	// CategoryStore is for persistence-backend errors.
	CategoryStore
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryIngestion:
		return "ingestion"
	case CategoryStructural:
		return "structural"
	case CategoryResolution:
		return "resolution"
	case CategoryStore:
		return "store"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E010").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit collector-limit notification.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Spec-ingestion codes (component B). Surfaced synchronously from the
// generator and abort that input's build per spec.md §7.
var (
	// P001 indicates a malformed @prefix declaration in a TTL file.
	P001_BAD_PREFIX = code("P001", CategoryIngestion)

	// P002 indicates a triple block that was never terminated with '.'.
	P002_DANGLING_TRIPLE = code("P002", CategoryIngestion)

	// P003 indicates a malformed OSLC shape (missing path or valueType).
	P003_BAD_SHAPE = code("P003", CategoryIngestion)

	// P004 indicates a shared-shape reference that could not be resolved.
	P004_UNRESOLVED_SHARED_SHAPE = code("P004", CategoryIngestion)

	// P005 indicates malformed XML in an XMI source.
	P005_BAD_XMI = code("P005", CategoryIngestion)

	// P006 indicates an Xtext grammar rule that could not be parsed.
	P006_BAD_GRAMMAR_RULE = code("P006", CategoryIngestion)

	// P007 indicates malformed JSON in a JSON-schema source.
	P007_BAD_JSON_SCHEMA = code("P007", CategoryIngestion)

	// P010 indicates the TTL and XMI class sets disagree (cross-validation orphan).
	P010_CLASS_SET_MISMATCH = code("P010", CategoryIngestion)

	// P011 indicates a kind emitted by the generator has no catalogue entry.
	P011_UNCATALOGUED_KIND = code("P011", CategoryIngestion)
)

// Structural invariant codes (component C, spec.md §3 "Invariants").
var (
	// S001 indicates a non-package, non-root element with no owning membership.
	S001_ORPHAN_ELEMENT = code("S001", CategoryStructural)

	// S002 indicates a cycle in the ownership relation.
	S002_OWNERSHIP_CYCLE = code("S002", CategoryStructural)

	// S003 indicates an owning_membership id that does not exist in the graph.
	S003_DANGLING_OWNING_MEMBERSHIP = code("S003", CategoryStructural)

	// S004 indicates an owning_membership target whose kind is not a Membership subtype.
	S004_INVALID_OWNING_MEMBERSHIP = code("S004", CategoryStructural)

	// S005 indicates a Relationship endpoint that does not exist in the graph.
	S005_DANGLING_RELATIONSHIP_ENDPOINT = code("S005", CategoryStructural)

	// S006 indicates a library package that is not a registered root.
	S006_LIBRARY_NOT_ROOT = code("S006", CategoryStructural)
)

// Resolution-pipeline codes (component E, spec.md §4.E / §7).
var (
	// E010 indicates a cross-reference could not be resolved to any element.
	E010_UNRESOLVED_REFERENCE = code("E010", CategoryResolution)

	// W010 indicates a resolved reference's target kind does not match the
	// catalogue's expected_target_kind. The reference still resolves.
	W010_TARGET_KIND_MISMATCH = code("W010", CategoryResolution)

	// W011 indicates more than one candidate matched within a single scope
	// layer; the first in insertion order was chosen deterministically.
	W011_AMBIGUOUS_REFERENCE = code("W011", CategoryResolution)

	// W012 indicates a TransitionSpecific scope union produced conflicting
	// candidates from more than one of its three sources.
	W012_TRANSITION_SCOPE_CONFLICT = code("W012", CategoryResolution)
)

// Persistence-backend codes (§6 Storage interface; the core only defines the
// vocabulary, external backends are out of scope per §1).
var (
	// T001 indicates a duplicate (project, commit) snapshot write.
	T001_SNAPSHOT_CONFLICT = code("T001", CategoryStore)

	// T002 indicates a snapshot lookup found nothing.
	T002_SNAPSHOT_NOT_FOUND = code("T002", CategoryStore)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	E_LIMIT_REACHED,
	E_INTERNAL,

	P001_BAD_PREFIX,
	P002_DANGLING_TRIPLE,
	P003_BAD_SHAPE,
	P004_UNRESOLVED_SHARED_SHAPE,
	P005_BAD_XMI,
	P006_BAD_GRAMMAR_RULE,
	P007_BAD_JSON_SCHEMA,
	P010_CLASS_SET_MISMATCH,
	P011_UNCATALOGUED_KIND,

	S001_ORPHAN_ELEMENT,
	S002_OWNERSHIP_CYCLE,
	S003_DANGLING_OWNING_MEMBERSHIP,
	S004_INVALID_OWNING_MEMBERSHIP,
	S005_DANGLING_RELATIONSHIP_ENDPOINT,
	S006_LIBRARY_NOT_ROOT,

	E010_UNRESOLVED_REFERENCE,
	W010_TARGET_KIND_MISMATCH,
	W011_AMBIGUOUS_REFERENCE,
	W012_TRANSITION_SCOPE_CONFLICT,

	T001_SNAPSHOT_CONFLICT,
	T002_SNAPSHOT_NOT_FOUND,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
