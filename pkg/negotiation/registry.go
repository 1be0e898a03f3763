package negotiation

import (
	"context"
	"maps"
	"slices"

	"github.com/dmitrymomot/langkit/pkg/language"
)

// Provider contributes language types and negotiation methods to a registry.
// Providers are the explicit registration seam for external code: anything
// that wants to publish a type or a method implements this interface and is
// passed to NewRegistry at startup.
type Provider interface {
	Types() []Type
	Methods() []Descriptor
}

// Alter is a transformation applied to the aggregated registration after all
// providers have contributed. Alters run in the order they were supplied and
// may add, replace or remove entries.
type Alter func(*Registration)

// Registration is the mutable aggregation handed to Alter callbacks.
type Registration struct {
	Types   map[TypeID]Type
	Methods map[MethodID]Descriptor
}

// Registry holds the full set of known language types and negotiation
// methods for one process or request. It is built once from providers and
// alter callbacks and is read-only afterwards.
type Registry struct {
	types   map[TypeID]Type
	methods map[MethodID]Descriptor
}

// NewRegistry aggregates the contributions of all providers, applies the
// alter callbacks in order, and injects the built-in default method with the
// highest weight so it is always evaluated last. Later providers silently
// override earlier contributions under the same ID.
func NewRegistry(providers []Provider, alters ...Alter) *Registry {
	reg := &Registration{
		Types:   make(map[TypeID]Type),
		Methods: make(map[MethodID]Descriptor),
	}

	for _, p := range providers {
		for _, t := range p.Types() {
			reg.Types[t.ID] = t
		}
		for _, d := range p.Methods() {
			reg.Methods[d.ID] = d
		}
	}

	for _, alter := range alters {
		alter(reg)
	}

	// The default method closes every chain. It applies to all known types
	// and unconditionally returns the configured default language.
	weight := 0
	for _, d := range reg.Methods {
		if d.Weight >= weight {
			weight = d.Weight + 1
		}
	}
	reg.Methods[MethodDefault] = Descriptor{
		ID:          MethodDefault,
		Name:        "Default language",
		Description: "Uses the configured default language.",
		Types:       slices.Sorted(maps.Keys(reg.Types)),
		Weight:      weight,
		Method: MethodFunc(func(r *Request, langs language.Set) string {
			return langs.Default().Code
		}),
	}

	return &Registry{types: reg.Types, methods: reg.Methods}
}

// Methods returns all known negotiation method descriptors keyed by ID.
func (reg *Registry) Methods() map[MethodID]Descriptor {
	return maps.Clone(reg.methods)
}

// Method returns the descriptor for the given ID.
func (reg *Registry) Method(id MethodID) (Descriptor, bool) {
	d, ok := reg.methods[id]
	return d, ok
}

// Types returns all known language types keyed by ID.
func (reg *Registry) Types() map[TypeID]Type {
	return maps.Clone(reg.types)
}

// ConfigurableTypes returns the IDs of configurable types recomputed live
// from the type definitions, sorted for determinism.
func (reg *Registry) ConfigurableTypes() []TypeID {
	var out []TypeID
	for id, t := range reg.types {
		if t.Configurable {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// EnabledTypes returns the configurable type IDs recorded in the store,
// falling back to the live definitions when the store has none yet.
func (reg *Registry) EnabledTypes(ctx context.Context, store SettingsStore) []TypeID {
	enabled, err := store.EnabledTypes(ctx)
	if err != nil || len(enabled) == 0 {
		return reg.ConfigurableTypes()
	}
	return enabled
}

// InstallTypes bridges type definitions and negotiation settings. Every
// non-configurable type gets its declared fixed method order installed,
// filtered to methods the registry actually knows; every configurable type
// is recorded in the enabled-types list. Run it whenever the set of types
// or methods changes.
func (reg *Registry) InstallTypes(ctx context.Context, store SettingsStore) error {
	var configurable []TypeID
	for _, id := range slices.Sorted(maps.Keys(reg.types)) {
		t := reg.types[id]
		if t.Configurable {
			configurable = append(configurable, id)
			continue
		}
		weights := make([]WeightedMethod, 0, len(t.FixedMethods))
		for i, m := range t.FixedMethods {
			if _, known := reg.methods[m]; known {
				weights = append(weights, WeightedMethod{ID: m, Weight: i})
			}
		}
		if err := reg.SetMethodOrder(ctx, store, id, weights); err != nil {
			return err
		}
	}
	return store.SetEnabledTypes(ctx, configurable)
}

// Disable removes the given types from the enabled-types list. Their stored
// negotiation settings are kept so re-enabling restores the previous order.
func (reg *Registry) Disable(ctx context.Context, store SettingsStore, types ...TypeID) error {
	enabled := reg.EnabledTypes(ctx, store)
	enabled = slices.DeleteFunc(enabled, func(id TypeID) bool {
		return slices.Contains(types, id)
	})
	return store.SetEnabledTypes(ctx, enabled)
}

// Purge re-normalizes every type's stored method sequence against the
// currently known methods: stale IDs are dropped, the relative order of the
// survivors is preserved, and weights are renumbered densely from zero.
func (reg *Registry) Purge(ctx context.Context, store SettingsStore) error {
	for _, id := range slices.Sorted(maps.Keys(reg.types)) {
		stored, err := store.Get(ctx, id)
		if err != nil {
			return err
		}
		weights := make([]WeightedMethod, 0, len(stored))
		for _, m := range stored {
			if _, known := reg.methods[m]; known {
				weights = append(weights, WeightedMethod{ID: m, Weight: len(weights)})
			}
		}
		if err := reg.SetMethodOrder(ctx, store, id, weights); err != nil {
			return err
		}
	}
	return nil
}
