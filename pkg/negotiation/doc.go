// Package negotiation implements the language negotiation pipeline: for a
// given language type (interface text, content, URL) it determines which
// language serves the current request by evaluating an ordered, configurable
// chain of detection methods until one succeeds.
//
// # Architecture
//
// Negotiation methods are strategies implementing the Method interface.
// Providers contribute method descriptors and language types to a Registry
// at startup; an ordered list of Alter callbacks can transform the
// aggregated registration before it is sealed. The registry always injects
// the built-in default method, evaluated last, which unconditionally returns
// the configured default language.
//
// The per-type method order is durable configuration held behind the
// SettingsStore interface. MemoryStore serves tests and single-process
// setups; RedisStore and PGStore persist the same shape in Redis and
// PostgreSQL. Order normalization (weight sorting, filtering of unknown or
// inapplicable methods) happens in the registry before anything reaches a
// store, so stores stay dumb.
//
// Resolution is a linear scan with per-request memoization: each method runs
// at most once per request regardless of how many type chains include it,
// and its result is handed out by value so callers cannot mutate each
// other's view. A resolution never fails; the worst case is the default
// language tagged with the default method ID.
//
// # Usage
//
//	cfg, err := negotiation.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	langs := language.MustNewSet(
//	    language.Language{Code: "en", Name: "English", Default: true},
//	    language.Language{Code: "fr", Name: "French", Weight: 1},
//	)
//
//	registry := negotiation.NewRegistry([]negotiation.Provider{
//	    negotiation.DefaultProvider(cfg),
//	})
//
//	store := negotiation.NewMemoryStore()
//	if err := registry.InstallTypes(ctx, store); err != nil {
//	    log.Fatal(err)
//	}
//
//	n, err := negotiation.New(registry, store, langs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.Handle("/", negotiation.Middleware(n)(handler))
//
// Inside a handler the negotiated language is available from the request
// context:
//
//	lang, ok := negotiation.GetLanguage(r.Context())
package negotiation
