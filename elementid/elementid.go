package elementid

import (
	"github.com/google/uuid"
)

// ElementId opaquely identifies an element or relationship for the lifetime
// of the graph that contains it.
type ElementId struct {
	uuid uuid.UUID
}

// hashNamespace is the fixed namespace UUID used by [FromString] to derive a
// deterministic id from an arbitrary string via uuid.NewSHA1. It is held
// constant so that FromString(s) always returns the same ElementId for the
// same s, both within a run and across runs of the same binary version.
var hashNamespace = uuid.MustParse("6f8f4f2e-6f6d-4f2f-9b1a-2c6e9d6a8c10")

// New returns a fresh, randomly generated ElementId.
//
// Uses uuid.NewRandom (version 4). Cryptographic quality is not required;
// collision probability is negligible at the scale of a single model graph.
func New() ElementId {
	id, err := uuid.NewRandom()
	if err != nil {
		// crypto/rand failure is not recoverable; NewRandom only errors on
		// an exhausted entropy source.
		panic("elementid: failed to generate random id: " + err.Error())
	}
	return ElementId{uuid: id}
}

// FromString derives an ElementId from an arbitrary string.
//
// If s parses as a well-formed UUID textual form, that UUID is used
// directly. Otherwise a stable id is computed via uuid.NewSHA1 over a fixed
// package-level namespace UUID, so the same s always yields the same
// ElementId.
func FromString(s string) ElementId {
	if parsed, err := uuid.Parse(s); err == nil {
		return ElementId{uuid: parsed}
	}
	return ElementId{uuid: uuid.NewSHA1(hashNamespace, []byte(s))}
}

// Zero is the zero-value ElementId. It never equals an id produced by [New]
// or [FromString] (which derive from a non-nil UUID with overwhelming
// probability) and is used as a sentinel for "no id".
var Zero ElementId

// IsZero reports whether id is the zero value.
func (id ElementId) IsZero() bool {
	return id.uuid == uuid.Nil
}

// String returns the canonical hyphenated UUID representation.
func (id ElementId) String() string {
	return id.uuid.String()
}

// Compare returns -1, 0, or +1 ordering two ids by their string form. This
// gives a total, deterministic order suitable for sorting id slices such as
// canonical JSON element/relationship maps.
func Compare(a, b ElementId) int {
	as, bs := a.uuid.String(), b.uuid.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
