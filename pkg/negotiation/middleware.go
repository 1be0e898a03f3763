package negotiation

import (
	"net/http"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// MiddlewareConfig configures the negotiation middleware.
type MiddlewareConfig struct {
	// Type is the language type the middleware resolves. Defaults to
	// TypeInterface.
	Type TypeID

	// Authenticated reports whether the request's actor is a
	// non-anonymous principal. Defaults to always false.
	Authenticated func(r *http.Request) bool

	// PageCacheable reports whether the response is eligible for the page
	// cache. Defaults to always false.
	PageCacheable func(r *http.Request) bool

	// PersistCookie, when non-empty, names a cookie the middleware writes
	// with the negotiated langcode so later requests resolve it cheaply.
	PersistCookie string
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*MiddlewareConfig)

// WithType sets the language type the middleware resolves.
func WithType(t TypeID) MiddlewareOption {
	return func(c *MiddlewareConfig) { c.Type = t }
}

// WithAuthenticatedFunc wires the actor check used by the cache gate.
func WithAuthenticatedFunc(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *MiddlewareConfig) { c.Authenticated = fn }
}

// WithPageCacheableFunc wires the page cacheability check used by the
// cache gate.
func WithPageCacheableFunc(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *MiddlewareConfig) { c.PageCacheable = fn }
}

// WithPersistCookie makes the middleware persist the negotiated langcode in
// the named cookie.
func WithPersistCookie(name string) MiddlewareOption {
	return func(c *MiddlewareConfig) { c.PersistCookie = name }
}

// Middleware returns an HTTP middleware that negotiates the language for
// each request and stores the result in the request context, retrievable
// with GetLanguage. A fresh per-request negotiation state is created and
// discarded for every request.
func Middleware(n *Negotiator, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := MiddlewareConfig{Type: TypeInterface}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var reqOpts []RequestOption
			if cfg.Authenticated != nil {
				reqOpts = append(reqOpts, WithAuthenticated(cfg.Authenticated(r)))
			}
			if cfg.PageCacheable != nil {
				reqOpts = append(reqOpts, WithPageCacheable(cfg.PageCacheable(r)))
			}

			req := NewRequest(r, reqOpts...)
			lang := n.Resolve(r.Context(), req, cfg.Type)

			if cfg.PersistCookie != "" {
				persistLanguage(w, r, cfg.PersistCookie, lang)
			}

			next.ServeHTTP(w, r.WithContext(SetLanguage(r.Context(), lang)))
		})
	}
}

// persistLanguage writes the negotiated langcode to the given cookie when it
// is absent or stale.
func persistLanguage(w http.ResponseWriter, r *http.Request, name string, lang language.Language) {
	if cookie, err := r.Cookie(name); err == nil && cookie.Value == lang.Code {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    lang.Code,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
