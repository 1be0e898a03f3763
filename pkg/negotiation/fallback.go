package negotiation

import (
	"slices"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// FallbackAlter may reorder, extend or filter a computed fallback candidate
// list. It receives the candidates computed so far and returns the list to
// use instead.
type FallbackAlter func(r *Request, t TypeID, candidates []string) []string

// FallbackCandidates returns the ranked langcodes to try when content is
// not available in the negotiated language: the active codes in their
// configured display order followed by the "unspecified" sentinel. The list
// is computed once per request per type and then served from the request's
// cache slot.
func (n *Negotiator) FallbackCandidates(r *Request, t TypeID) []string {
	if cached, ok := r.fallbacks[t]; ok {
		return slices.Clone(cached)
	}

	candidates := append(n.langs.Codes(), language.CodeUnspecified)
	for _, alter := range n.fallbackAlters {
		candidates = alter(r, t, candidates)
	}

	r.fallbacks[t] = candidates
	return slices.Clone(candidates)
}
