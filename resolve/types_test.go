package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysml-go/sysml-core/resolve"
)

func TestScopeStrategy_String(t *testing.T) {
	cases := map[resolve.ScopeStrategy]string{
		resolve.OwningNamespace:         "OwningNamespace",
		resolve.NonExpressionNamespace:  "NonExpressionNamespace",
		resolve.RelativeNamespace:       "RelativeNamespace",
		resolve.FeatureChaining:         "FeatureChaining",
		resolve.TransitionSpecific:      "TransitionSpecific",
		resolve.Global:                  "Global",
		resolve.ScopeStrategy(255):      "Unknown",
	}
	for strategy, want := range cases {
		assert.Equal(t, want, strategy.String())
	}
}

func TestScopedResolution_String(t *testing.T) {
	assert.Equal(t, "Found", resolve.Found.String())
	assert.Equal(t, "NotFound", resolve.NotFound.String())
	assert.Equal(t, "Ambiguous", resolve.Ambiguous.String())
	assert.Equal(t, "ResolutionError", resolve.ResolutionError.String())
	assert.Equal(t, "Unknown", resolve.ScopedResolution(255).String())
}
