package negotiation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/language"
	"github.com/dmitrymomot/langkit/pkg/negotiation"
)

func TestFallbackCandidates(t *testing.T) {
	t.Parallel()

	t.Run("active codes in display order plus sentinel", func(t *testing.T) {
		t.Parallel()
		registry := negotiation.NewRegistry([]negotiation.Provider{testProvider()})
		n, err := negotiation.New(registry, negotiation.NewMemoryStore(), testLanguages())
		require.NoError(t, err)

		candidates := n.FallbackCandidates(negotiation.NewRequest(nil), testType)
		assert.Equal(t, []string{"en", "fr", "de", language.CodeUnspecified}, candidates)
	})

	t.Run("locked languages are excluded", func(t *testing.T) {
		t.Parallel()
		langs := language.MustNewSet(
			language.Language{Code: "en", Default: true},
			language.Language{Code: "zxx", Locked: true, Weight: 1},
		)
		registry := negotiation.NewRegistry([]negotiation.Provider{testProvider()})
		n, err := negotiation.New(registry, negotiation.NewMemoryStore(), langs)
		require.NoError(t, err)

		candidates := n.FallbackCandidates(negotiation.NewRequest(nil), testType)
		assert.Equal(t, []string{"en", language.CodeUnspecified}, candidates)
	})

	t.Run("alter callbacks may reorder", func(t *testing.T) {
		t.Parallel()
		registry := negotiation.NewRegistry([]negotiation.Provider{testProvider()})
		n, err := negotiation.New(registry, negotiation.NewMemoryStore(), testLanguages(),
			negotiation.WithFallbackAlter(func(r *negotiation.Request, tID negotiation.TypeID, candidates []string) []string {
				// Promote German for this hypothetical collaborator.
				return append([]string{"de"}, candidates[:2]...)
			}),
		)
		require.NoError(t, err)

		candidates := n.FallbackCandidates(negotiation.NewRequest(nil), testType)
		assert.Equal(t, []string{"de", "en", "fr"}, candidates)
	})

	t.Run("computed once per request per type", func(t *testing.T) {
		t.Parallel()
		alters := 0
		registry := negotiation.NewRegistry([]negotiation.Provider{testProvider()})
		n, err := negotiation.New(registry, negotiation.NewMemoryStore(), testLanguages(),
			negotiation.WithFallbackAlter(func(r *negotiation.Request, tID negotiation.TypeID, candidates []string) []string {
				alters++
				return candidates
			}),
		)
		require.NoError(t, err)

		req := negotiation.NewRequest(nil)
		first := n.FallbackCandidates(req, testType)
		second := n.FallbackCandidates(req, testType)

		assert.Equal(t, 1, alters)
		assert.Equal(t, first, second)

		// Returned slices are copies: mutating one does not poison the cache.
		first[0] = "mutated"
		third := n.FallbackCandidates(req, testType)
		assert.Equal(t, second, third)
	})
}
