package negotiation

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// languageContextKey is the key for storing the negotiated language in context.
type languageContextKey struct{}

// SetLanguage stores the negotiated language in the context.
func SetLanguage(ctx context.Context, lang language.Language) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// GetLanguage returns the negotiated language from the context and whether
// one was stored.
func GetLanguage(ctx context.Context) (language.Language, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(language.Language)
	return lang, ok
}
