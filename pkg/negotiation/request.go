package negotiation

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// Request owns all per-request negotiation state: the incoming HTTP request,
// the actor and cacheability facts the invocation gate needs, and the named
// cache slots for memoized method results and computed fallback lists.
// Create one Request per incoming request and discard it afterwards; results
// may depend on request-specific input and must never be shared across
// requests.
type Request struct {
	// HTTP is the incoming request. It may be nil for non-HTTP callers
	// such as CLI tools, in which case request-bound methods decline.
	HTTP *http.Request

	// Path is the request path without its leading slash.
	Path string

	// Authenticated reports whether the actor is a non-anonymous
	// principal. Authenticated traffic is always negotiated regardless of
	// method cache policies.
	Authenticated bool

	// PageCacheable reports whether the response is eligible for the page
	// cache on this request.
	PageCacheable bool

	results   map[MethodID]language.Language
	attempted map[MethodID]bool
	fallbacks map[TypeID][]string
}

// RequestOption configures a Request.
type RequestOption func(*Request)

// WithAuthenticated marks the request actor as authenticated.
func WithAuthenticated(v bool) RequestOption {
	return func(r *Request) { r.Authenticated = v }
}

// WithPageCacheable marks the response as page-cacheable.
func WithPageCacheable(v bool) RequestOption {
	return func(r *Request) { r.PageCacheable = v }
}

// NewRequest creates the per-request negotiation state for an incoming HTTP
// request. r may be nil.
func NewRequest(r *http.Request, opts ...RequestOption) *Request {
	req := &Request{
		HTTP:      r,
		results:   make(map[MethodID]language.Language),
		attempted: make(map[MethodID]bool),
		fallbacks: make(map[TypeID][]string),
	}
	if r != nil {
		req.Path = strings.TrimPrefix(r.URL.Path, "/")
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// invoke runs the method once per request and memoizes its outcome by method
// ID, so a method shared by several type chains is evaluated at most once.
// Misses are memoized too. The returned language is a value copy, never a
// shared mutable object.
//
// The cache gate always admits unrestricted methods and authenticated
// actors; only anonymous traffic is matched against the page-cache policy.
func (r *Request) invoke(d Descriptor, langs language.Set) (language.Language, bool) {
	if r.attempted[d.ID] {
		cached, ok := r.results[d.ID]
		return cached, ok
	}
	r.attempted[d.ID] = true

	if d.Method == nil || !r.gateOpen(d.CachePolicy) {
		return language.Language{}, false
	}

	code := d.Method.Negotiate(r, langs)
	if code == "" {
		return language.Language{}, false
	}
	lang, ok := langs.Get(code)
	if !ok {
		return language.Language{}, false
	}

	r.results[d.ID] = lang
	return lang, true
}

// gateOpen reports whether the method may run on this request.
func (r *Request) gateOpen(p CachePolicy) bool {
	if p == CacheUnrestricted || r.Authenticated {
		return true
	}
	return (p == CachePageCacheEnabled) == r.PageCacheable
}
