package negotiation

import (
	"github.com/dmitrymomot/langkit/pkg/language"
)

// Method is the strategy every negotiation method implements. Negotiate
// inspects the request and returns the langcode it detected, or the empty
// string when it has no opinion. Declining is not an error: a method must
// never fail just because it found no match.
type Method interface {
	Negotiate(r *Request, langs language.Set) string
}

// MethodFunc adapts a plain function to the Method interface.
type MethodFunc func(r *Request, langs language.Set) string

// Negotiate calls f.
func (f MethodFunc) Negotiate(r *Request, langs language.Set) string {
	return f(r, langs)
}

// SwitchLink is one entry of a language switcher link set.
type SwitchLink struct {
	// Code is the langcode the link switches to.
	Code string
	// Title is the display title, normally the language name. Consumers
	// may relabel it before rendering.
	Title string
	// Href is the link target for the given path in that language.
	Href string
}

// SwitchLinkProvider is implemented by methods that can produce language
// switcher links for a path. Returning an empty map means the method cannot
// provide links for this request and the scan continues.
type SwitchLinkProvider interface {
	SwitchLinks(t TypeID, path string, langs language.Set) map[string]SwitchLink
}

// URLRewriter is implemented by methods that rewrite outbound paths, e.g.
// to prepend a language prefix. Rewrites mutate path and opts in place.
type URLRewriter interface {
	RewriteURL(path *string, opts *RewriteOptions)
}

// CachePolicy restricts when a method may run for anonymous traffic. The
// pipeline invokes a restricted method for an anonymous actor only when the
// response's page cacheability matches the declared policy; authenticated
// actors are always negotiated regardless of policy.
type CachePolicy int

const (
	// CacheUnrestricted methods are safe to invoke on every request.
	CacheUnrestricted CachePolicy = iota
	// CachePageCacheDisabled methods run for anonymous actors only when
	// the response is not page-cacheable.
	CachePageCacheDisabled
	// CachePageCacheEnabled methods run for anonymous actors only when
	// the response is page-cacheable.
	CachePageCacheEnabled
)

// Descriptor is the static description of a negotiation method as
// contributed to the registry.
type Descriptor struct {
	ID          MethodID
	Name        string
	Description string

	// Types restricts the method to the listed language types. An empty
	// list makes the method available to every configurable type.
	Types []TypeID

	// Weight orders methods when a type's sequence is first assigned.
	// Runtime evaluation follows the stored sequence, never live weights.
	Weight int

	// Method is the negotiation strategy. A descriptor whose strategy is
	// unavailable is treated as a miss, not an error.
	Method Method

	// CachePolicy gates invocation for anonymous traffic.
	CachePolicy CachePolicy
}

// appliesTo reports whether the method may serve the given type. A method
// with no declared types serves every configurable type; one with declared
// types serves exactly those.
func (d Descriptor) appliesTo(t TypeID, configurable map[TypeID]bool) bool {
	if len(d.Types) == 0 {
		return configurable[t]
	}
	for _, id := range d.Types {
		if id == t {
			return true
		}
	}
	return false
}
