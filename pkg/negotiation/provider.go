package negotiation

import "net/http"

// builtinProvider contributes the standard language types and the built-in
// negotiation methods, wired from a Config.
type builtinProvider struct {
	cfg  Config
	user PreferenceFunc
}

// ProviderOption configures the built-in provider.
type ProviderOption func(*builtinProvider)

// WithUserPreference wires the extractor the user method uses to read the
// authenticated principal's stored language preference.
func WithUserPreference(fn PreferenceFunc) ProviderOption {
	return func(p *builtinProvider) { p.user = fn }
}

// DefaultProvider returns the provider contributing the interface, content
// and url language types and the built-in negotiation methods. The interface
// type is configurable; content and url carry fixed method orders ending in
// the default method.
func DefaultProvider(cfg Config, opts ...ProviderOption) Provider {
	p := &builtinProvider{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Types implements Provider.
func (p *builtinProvider) Types() []Type {
	return []Type{
		{
			ID:           TypeInterface,
			Name:         "Interface text",
			Description:  "Language of interface text, method order set by administrators.",
			Configurable: true,
		},
		{
			ID:           TypeContent,
			Name:         "Content",
			Description:  "Language content is served in.",
			FixedMethods: []MethodID{MethodURL, MethodDefault},
		},
		{
			ID:           TypeURL,
			Name:         "URL",
			Description:  "Language used when generating URLs.",
			FixedMethods: []MethodID{MethodURL},
		},
	}
}

// Methods implements Provider. Weights only order the initial default
// sequence; stored order rules at runtime.
func (p *builtinProvider) Methods() []Descriptor {
	user := p.user
	if user == nil {
		user = func(r *http.Request) string { return "" }
	}

	return []Descriptor{
		{
			ID:          MethodURL,
			Name:        "URL",
			Description: "Language from the URL path prefix or domain.",
			Types:       []TypeID{TypeInterface, TypeContent, TypeURL},
			Weight:      -8,
			Method: URLMethod{
				Source:   p.cfg.urlSource(),
				Prefixes: p.cfg.Prefixes,
				Domains:  p.cfg.Domains,
			},
		},
		{
			ID:          MethodSession,
			Name:        "Session",
			Description: "Language from a request parameter or the session cookie.",
			Weight:      -6,
			Method:      SessionMethod{Param: p.cfg.QueryParam},
			CachePolicy: CachePageCacheDisabled,
		},
		{
			ID:          MethodCookie,
			Name:        "Cookie",
			Description: "Language from the preference cookie.",
			Weight:      -5,
			Method:      CookieMethod{Name: p.cfg.CookieName},
			CachePolicy: CachePageCacheDisabled,
		},
		{
			ID:          MethodUser,
			Name:        "User",
			Description: "Language from the authenticated principal's preference.",
			Weight:      -4,
			Method:      UserMethod{Preference: user},
			CachePolicy: CachePageCacheDisabled,
		},
		{
			ID:          MethodBrowser,
			Name:        "Browser",
			Description: "Language from the Accept-Language header.",
			Weight:      -2,
			Method:      BrowserMethod{},
			CachePolicy: CachePageCacheDisabled,
		},
	}
}
