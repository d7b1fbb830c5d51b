package diag

import "strconv"

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or kind.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or kind received.
	DetailKeyGot = "got"

	// DetailKeyElementID is the element id involved in the diagnostic.
	DetailKeyElementID = "element_id"

	// DetailKeyQualifiedName is the escaped qualified name of an element.
	DetailKeyQualifiedName = "qualified_name"

	// DetailKeyElementKind is the element kind name involved in the diagnostic.
	DetailKeyElementKind = "kind"

	// DetailKeyRelationshipKind is the relationship kind involved.
	DetailKeyRelationshipKind = "relationship_kind"

	// DetailKeyPrefix is the malformed or unresolved TTL prefix.
	DetailKeyPrefix = "prefix"

	// DetailKeyStrategy is the scoping strategy that produced the diagnostic
	// (e.g., "OwningNamespace", "RelativeNamespace", "Global").
	DetailKeyStrategy = "strategy"

	// DetailKeyCandidateCount is the number of candidates found during
	// resolution, used alongside W011_AMBIGUOUS_REFERENCE.
	DetailKeyCandidateCount = "candidate_count"

	// DetailKeyCandidates is the candidate element ids as a JSON array,
	// used alongside W011_AMBIGUOUS_REFERENCE.
	DetailKeyCandidates = "candidates"

	// DetailKeyChosen is the element id chosen deterministically among
	// ambiguous candidates.
	DetailKeyChosen = "chosen"

	// DetailKeyCycle is the ownership-cycle participants as a JSON array of
	// element ids, used with S002_OWNERSHIP_CYCLE.
	DetailKeyCycle = "cycle"

	// DetailKeyOwnerID is the owner element id involved in a structural
	// diagnostic.
	DetailKeyOwnerID = "owner_id"

	// DetailKeyMembershipID is the owning_membership element id involved in
	// S003/S004 diagnostics.
	DetailKeyMembershipID = "membership_id"

	// DetailKeyRelationshipID is the relationship element id involved in an
	// S005 dangling-endpoint diagnostic.
	DetailKeyRelationshipID = "relationship_id"

	// DetailKeySourceFormat is the ingestion source format (e.g., "ttl",
	// "oslc-shapes", "xmi", "xtext", "json-schema").
	DetailKeySourceFormat = "source_format"

	// DetailKeyLine is a line number within an ingested source file.
	DetailKeyLine = "line"

	// DetailKeyShapeName is the OSLC shape name involved in a P003/P004
	// diagnostic.
	DetailKeyShapeName = "shape"

	// DetailKeyProjectID is the project identifier involved in a store
	// diagnostic.
	DetailKeyProjectID = "project_id"

	// DetailKeyCommit is the commit identifier involved in a snapshot
	// diagnostic (T001/T002).
	DetailKeyCommit = "commit"

	// DetailKeyDepth is the recursion depth at which a search was aborted
	// (e.g., the global-scope library search depth limit).
	DetailKeyDepth = "depth"
)

// ExpectedGot creates a pair of details for target-kind mismatch diagnostics.
//
// This is the standard pattern for W010_TARGET_KIND_MISMATCH: "expected X,
// got Y".
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// ElementRef creates detail entries identifying an element by id and
// qualified name.
func ElementRef(elementID, qualifiedName string) []Detail {
	return []Detail{
		{Key: DetailKeyElementID, Value: elementID},
		{Key: DetailKeyQualifiedName, Value: qualifiedName},
	}
}

// AmbiguousCandidates creates detail entries for W011_AMBIGUOUS_REFERENCE,
// recording how many candidates were found and which one was chosen
// deterministically.
func AmbiguousCandidates(count int, chosen string) []Detail {
	return []Detail{
		{Key: DetailKeyCandidateCount, Value: strconv.Itoa(count)},
		{Key: DetailKeyChosen, Value: chosen},
	}
}

// StructuralRef creates detail entries for structural diagnostics that
// reference an owner and a membership or relationship element.
func StructuralRef(ownerID, referentID string) []Detail {
	return []Detail{
		{Key: DetailKeyOwnerID, Value: ownerID},
		{Key: DetailKeyMembershipID, Value: referentID},
	}
}
