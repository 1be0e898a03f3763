package negotiation

import (
	"context"
	"slices"
	"sync"
)

// WeightedMethod pairs a method ID with the weight that orders it inside a
// type's sequence. Weights only decide the stored order; they are not
// persisted and never consulted at resolution time.
type WeightedMethod struct {
	ID     MethodID
	Weight int
}

// SettingsStore persists the durable negotiation configuration: one ordered
// method sequence per language type plus the list of enabled configurable
// types. Implementations only store and retrieve; normalization happens in
// the registry before anything reaches the store. Mutations are
// administrative, out-of-band operations with last-write-wins semantics;
// readers always see a fully-formed snapshot.
type SettingsStore interface {
	// Get returns the stored method sequence for the type, in evaluation
	// order. An unknown type yields an empty sequence, not an error.
	Get(ctx context.Context, t TypeID) ([]MethodID, error)

	// Set replaces the stored method sequence for the type.
	Set(ctx context.Context, t TypeID, seq []MethodID) error

	// EnabledTypes returns the recorded configurable type IDs.
	EnabledTypes(ctx context.Context) ([]TypeID, error)

	// SetEnabledTypes replaces the recorded configurable type IDs.
	SetEnabledTypes(ctx context.Context, types []TypeID) error
}

// SetMethodOrder normalizes and persists a method order for the given type.
// Methods are sorted by weight ascending with ties broken by input order, so
// the same input always produces the same stored sequence. IDs unknown to
// the registry and methods whose declared types exclude t are silently
// filtered out.
func (reg *Registry) SetMethodOrder(ctx context.Context, store SettingsStore, t TypeID, weights []WeightedMethod) error {
	if _, known := reg.types[t]; !known {
		return ErrUnknownType
	}

	ordered := slices.Clone(weights)
	slices.SortStableFunc(ordered, func(a, b WeightedMethod) int {
		return a.Weight - b.Weight
	})

	configurable := reg.configurableIndex()
	seq := make([]MethodID, 0, len(ordered))
	for _, wm := range ordered {
		d, known := reg.methods[wm.ID]
		if !known || !d.appliesTo(t, configurable) {
			continue
		}
		if slices.Contains(seq, wm.ID) {
			continue
		}
		seq = append(seq, wm.ID)
	}

	return store.Set(ctx, t, seq)
}

// MethodOrder reads the stored method sequence for the type, dropping IDs
// the registry no longer knows. Configuration drift is resolved silently;
// store failures degrade to an empty order so resolution falls through to
// the default language.
func (reg *Registry) MethodOrder(ctx context.Context, store SettingsStore, t TypeID) []MethodID {
	stored, err := store.Get(ctx, t)
	if err != nil {
		return nil
	}
	seq := make([]MethodID, 0, len(stored))
	for _, id := range stored {
		if _, known := reg.methods[id]; known {
			seq = append(seq, id)
		}
	}
	return seq
}

func (reg *Registry) configurableIndex() map[TypeID]bool {
	out := make(map[TypeID]bool, len(reg.types))
	for id, t := range reg.types {
		if t.Configurable {
			out[id] = true
		}
	}
	return out
}

// MemoryStore is an in-memory SettingsStore. It is the default store and is
// useful for tests and single-process setups.
type MemoryStore struct {
	mu      sync.RWMutex
	seqs    map[TypeID][]MethodID
	enabled []TypeID
}

// NewMemoryStore creates an empty in-memory settings store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seqs: make(map[TypeID][]MethodID)}
}

// Get returns the stored sequence for the type.
func (m *MemoryStore) Get(ctx context.Context, t TypeID) ([]MethodID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.seqs[t]), nil
}

// Set replaces the stored sequence for the type.
func (m *MemoryStore) Set(ctx context.Context, t TypeID, seq []MethodID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seqs[t] = slices.Clone(seq)
	return nil
}

// EnabledTypes returns the recorded configurable type IDs.
func (m *MemoryStore) EnabledTypes(ctx context.Context) ([]TypeID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.enabled), nil
}

// SetEnabledTypes replaces the recorded configurable type IDs.
func (m *MemoryStore) SetEnabledTypes(ctx context.Context, types []TypeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = slices.Clone(types)
	return nil
}

var _ SettingsStore = (*MemoryStore)(nil)
