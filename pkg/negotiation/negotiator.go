package negotiation

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// Negotiator is the pipeline executor. Given a language type it walks the
// type's stored method order and returns the first method result naming an
// active language, or the default language when no method matches. A single
// resolution never fails: configuration drift, unavailable strategies and
// invalid langcodes all degrade to misses.
type Negotiator struct {
	registry       *Registry
	store          SettingsStore
	langs          language.Set
	log            *slog.Logger
	fallbackAlters []FallbackAlter
}

// Option configures a Negotiator.
type Option func(*Negotiator)

// WithLogger sets the structured logger used for debug logging of method
// evaluation. Logging is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(n *Negotiator) { n.log = log }
}

// WithFallbackAlter registers a callback that may reorder or extend computed
// fallback candidate lists. Callbacks run in registration order.
func WithFallbackAlter(alter FallbackAlter) Option {
	return func(n *Negotiator) {
		n.fallbackAlters = append(n.fallbackAlters, alter)
	}
}

// New creates a negotiator over the given registry, settings store and
// language set.
func New(registry *Registry, store SettingsStore, langs language.Set, opts ...Option) (*Negotiator, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if langs.Len() == 0 {
		return nil, language.ErrEmptySet
	}

	n := &Negotiator{
		registry: registry,
		store:    store,
		langs:    langs,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = slog.New(slog.DiscardHandler)
	}
	return n, nil
}

// Languages returns the active language set the negotiator resolves against.
func (n *Negotiator) Languages() language.Set {
	return n.langs
}

// Registry returns the method and type registry backing the negotiator.
func (n *Negotiator) Registry() *Registry {
	return n.registry
}

// Resolve determines the language to use for the given type on this
// request. It scans the type's stored method order, skipping methods whose
// declared types exclude t, and returns the first result that names an
// active language, tagged with the winning method ID. When the chain is
// empty or every method declines, it returns the default language tagged
// with MethodDefault.
func (n *Negotiator) Resolve(ctx context.Context, r *Request, t TypeID) language.Language {
	configurable := n.registry.configurableIndex()

	for _, id := range n.registry.MethodOrder(ctx, n.store, t) {
		d, ok := n.registry.methods[id]
		if !ok || !d.appliesTo(t, configurable) {
			continue
		}
		lang, ok := r.invoke(d, n.langs)
		if !ok {
			continue
		}
		lang.Method = string(id)
		n.log.DebugContext(ctx, "language negotiated",
			slog.String("type", string(t)),
			slog.String("method", string(id)),
			slog.String("language", lang.Code),
		)
		return lang
	}

	def := n.langs.Default()
	def.Method = string(MethodDefault)
	n.log.DebugContext(ctx, "no negotiation method matched",
		slog.String("type", string(t)),
		slog.String("language", def.Code),
	)
	return def
}
