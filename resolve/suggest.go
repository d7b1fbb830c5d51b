package resolve

import "github.com/antzucaro/matchr"

// suggestThreshold is the minimum Jaro-Winkler similarity a candidate name
// must reach before it is offered as a "did you mean" hint on an
// E010_UNRESOLVED_REFERENCE diagnostic.
const suggestThreshold = 0.85

// suggest returns the candidate in names most similar to target by
// Jaro-Winkler distance, and true, if that similarity meets
// suggestThreshold. Ties resolve to the first candidate in names, so
// callers that want a deterministic hint should pass names in a stable
// order (insertion order of the scope being searched).
func suggest(target string, names []string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, candidate := range names {
		score := matchr.JaroWinkler(target, candidate, true)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
