package negotiation

import (
	"net/http"
	"net/url"
	"strings"

	xlanguage "golang.org/x/text/language"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// URLSource selects how the URL method reads the language from the request.
type URLSource int

const (
	// SourcePrefix derives the language from the first path segment.
	SourcePrefix URLSource = iota
	// SourceDomain derives the language from the request host.
	SourceDomain
)

// URLMethod negotiates the language from the request URL, either from a
// configured path prefix or from a configured per-language domain. It also
// provides language switcher links and outbound URL rewriting.
type URLMethod struct {
	Source   URLSource
	Prefixes map[string]string
	Domains  map[string]string
}

// Negotiate implements Method.
func (m URLMethod) Negotiate(r *Request, langs language.Set) string {
	if r.HTTP == nil {
		return ""
	}
	switch m.Source {
	case SourceDomain:
		if lang, ok := DomainLanguage(r.HTTP.Host, langs, m.Domains); ok {
			return lang.Code
		}
	default:
		if lang, _, ok := SplitPrefix(r.Path, langs, m.Prefixes); ok {
			return lang.Code
		}
	}
	return ""
}

// SwitchLinks implements SwitchLinkProvider. Each active language gets a
// link to the given path in that language.
func (m URLMethod) SwitchLinks(t TypeID, path string, langs language.Set) map[string]SwitchLink {
	links := make(map[string]SwitchLink)
	for _, l := range langs.Unlocked() {
		p := path
		opts := RewriteOptions{Language: l, Prefixes: m.Prefixes, Domains: m.Domains}
		m.RewriteURL(&p, &opts)
		href := "/" + p
		if opts.Host != "" {
			href = "//" + opts.Host + "/" + p
		}
		links[l.Code] = SwitchLink{Code: l.Code, Title: l.Name, Href: href}
	}
	return links
}

// RewriteURL implements URLRewriter. Prefix rewriting prepends the target
// language's configured prefix; domain rewriting sets the target host.
func (m URLMethod) RewriteURL(path *string, opts *RewriteOptions) {
	if opts.Language.IsZero() {
		return
	}
	switch m.Source {
	case SourceDomain:
		domains := opts.Domains
		if domains == nil {
			domains = m.Domains
		}
		if domain, ok := domains[opts.Language.Code]; ok && domain != "" {
			opts.Host = domain
		}
	default:
		prefixes := opts.Prefixes
		if prefixes == nil {
			prefixes = m.Prefixes
		}
		if prefix, ok := prefixes[opts.Language.Code]; ok && prefix != "" {
			*path = prefix + "/" + strings.TrimPrefix(*path, "/")
		}
	}
}

// SessionMethod negotiates the language from an explicit request parameter,
// falling back to the session cookie written when the parameter was last
// seen. The same name is used for both.
type SessionMethod struct {
	Param string
}

// Negotiate implements Method.
func (m SessionMethod) Negotiate(r *Request, langs language.Set) string {
	if r.HTTP == nil || m.Param == "" {
		return ""
	}
	if code := language.NormalizeCode(r.HTTP.URL.Query().Get(m.Param)); code != "" {
		return code
	}
	if cookie, err := r.HTTP.Cookie(m.Param); err == nil {
		return language.NormalizeCode(cookie.Value)
	}
	return ""
}

// SwitchLinks implements SwitchLinkProvider by appending the session
// parameter to the given path for every active language.
func (m SessionMethod) SwitchLinks(t TypeID, path string, langs language.Set) map[string]SwitchLink {
	if m.Param == "" {
		return nil
	}
	links := make(map[string]SwitchLink)
	for _, l := range langs.Unlocked() {
		q := url.Values{m.Param: []string{l.Code}}
		links[l.Code] = SwitchLink{
			Code:  l.Code,
			Title: l.Name,
			Href:  "/" + strings.TrimPrefix(path, "/") + "?" + q.Encode(),
		}
	}
	return links
}

// CookieMethod negotiates the language from a plain preference cookie.
type CookieMethod struct {
	Name string
}

// Negotiate implements Method.
func (m CookieMethod) Negotiate(r *Request, langs language.Set) string {
	if r.HTTP == nil || m.Name == "" {
		return ""
	}
	cookie, err := r.HTTP.Cookie(m.Name)
	if err != nil {
		return ""
	}
	return language.NormalizeCode(cookie.Value)
}

// BrowserMethod negotiates the language from the Accept-Language header.
// Candidates are considered in quality order; exact matches win over base
// language matches so that "pt-br, en;q=0.9" prefers a configured "pt-br"
// but still reaches "pt" when only the base language is active.
type BrowserMethod struct{}

// Negotiate implements Method.
func (m BrowserMethod) Negotiate(r *Request, langs language.Set) string {
	if r.HTTP == nil {
		return ""
	}
	header := r.HTTP.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}

	tags, _, err := xlanguage.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}

	// Exact matches first, across the full quality-ordered list.
	for _, tag := range tags {
		code := strings.ToLower(tag.String())
		if _, ok := langs.Get(code); ok {
			return code
		}
	}
	// Base language fallback only after every exact candidate failed, so
	// quality ordering is respected.
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == xlanguage.No {
			continue
		}
		code := strings.ToLower(base.String())
		if _, ok := langs.Get(code); ok {
			return code
		}
	}
	return ""
}

// PreferenceFunc extracts the stored language preference of the request's
// principal. It returns the empty string when the principal has none.
type PreferenceFunc func(r *http.Request) string

// UserMethod negotiates the language from the authenticated principal's
// stored preference via a pluggable extractor.
type UserMethod struct {
	Preference PreferenceFunc
}

// Negotiate implements Method.
func (m UserMethod) Negotiate(r *Request, langs language.Set) string {
	if r.HTTP == nil || m.Preference == nil || !r.Authenticated {
		return ""
	}
	return language.NormalizeCode(m.Preference(r.HTTP))
}
