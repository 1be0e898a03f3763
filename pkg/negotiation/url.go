package negotiation

import (
	"net"
	"strings"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// SplitPrefix tokenizes path on its first segment and compares that segment
// against the configured langcode-to-prefix map for every language in the
// set. On a match it returns the language and the path with the prefix
// segment removed; otherwise it returns the zero language and the path
// unchanged. Matching is exact string equality, so the empty prefix matches
// only an empty first segment. The path is expected without a leading slash.
func SplitPrefix(path string, langs language.Set, prefixes map[string]string) (language.Language, string, bool) {
	prefix, rest, _ := strings.Cut(path, "/")

	for _, l := range langs.All() {
		configured, ok := prefixes[l.Code]
		if !ok {
			continue
		}
		if prefix == configured {
			return l, rest, true
		}
	}

	return language.Language{}, path, false
}

// DomainLanguage resolves the request host against the configured
// langcode-to-domain map. Ports are ignored on both sides. It is consulted
// by the URL method independently of prefix matching.
func DomainLanguage(host string, langs language.Set, domains map[string]string) (language.Language, bool) {
	host = stripPort(host)
	if host == "" {
		return language.Language{}, false
	}

	for _, l := range langs.All() {
		domain, ok := domains[l.Code]
		if !ok || domain == "" {
			continue
		}
		if strings.EqualFold(host, stripPort(domain)) {
			return l, true
		}
	}

	return language.Language{}, false
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// RewriteOptions carries the configuration an URL rewrite needs and the
// language the rewritten URL should address. Rewriters mutate it in place.
type RewriteOptions struct {
	// Language the URL should be generated for.
	Language language.Language
	// Prefixes maps langcodes to path prefixes.
	Prefixes map[string]string
	// Domains maps langcodes to hosts.
	Domains map[string]string
	// Host is set by domain-based rewriting and should replace the URL's
	// host when non-empty.
	Host string
}
