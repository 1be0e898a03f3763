package negotiation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/negotiation"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("aggregates providers and injects default method", func(t *testing.T) {
		t.Parallel()
		registry := negotiation.NewRegistry([]negotiation.Provider{
			testProvider(
				negotiation.Descriptor{ID: "alpha", Weight: 3, Method: stubMethod{code: "fr"}},
				negotiation.Descriptor{ID: "beta", Weight: 7, Method: stubMethod{code: "de"}},
			),
		})

		methods := registry.Methods()
		require.Len(t, methods, 3)

		def, ok := registry.Method(negotiation.MethodDefault)
		require.True(t, ok)
		assert.Greater(t, def.Weight, methods["beta"].Weight, "default method must order last")
		assert.Contains(t, def.Types, testType)
	})

	t.Run("alter callbacks transform the aggregation in order", func(t *testing.T) {
		t.Parallel()
		registry := negotiation.NewRegistry(
			[]negotiation.Provider{testProvider(
				negotiation.Descriptor{ID: "alpha", Weight: 1, Method: stubMethod{code: "fr"}},
			)},
			func(reg *negotiation.Registration) {
				d := reg.Methods["alpha"]
				d.Weight = 5
				reg.Methods["alpha"] = d
			},
			func(reg *negotiation.Registration) {
				delete(reg.Methods, "alpha")
			},
		)

		_, ok := registry.Method("alpha")
		assert.False(t, ok, "second alter removed the method")
	})

	t.Run("configurable types recomputed live", func(t *testing.T) {
		t.Parallel()
		registry := negotiation.NewRegistry([]negotiation.Provider{stubProvider{
			types: []negotiation.Type{
				{ID: "interface", Configurable: true},
				{ID: "content", FixedMethods: []negotiation.MethodID{negotiation.MethodDefault}},
			},
		}})

		assert.Equal(t, []negotiation.TypeID{"interface"}, registry.ConfigurableTypes())
	})
}

func TestInstallTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	registry := negotiation.NewRegistry([]negotiation.Provider{stubProvider{
		types: []negotiation.Type{
			{ID: "interface", Configurable: true},
			{
				ID: "content",
				FixedMethods: []negotiation.MethodID{
					"alpha",
					"missing", // unknown methods are dropped on install
					negotiation.MethodDefault,
				},
			},
		},
		methods: []negotiation.Descriptor{
			{ID: "alpha", Types: []negotiation.TypeID{"content"}, Weight: 1, Method: stubMethod{code: "fr"}},
		},
	}})

	store := negotiation.NewMemoryStore()
	require.NoError(t, registry.InstallTypes(ctx, store))

	seq, err := store.Get(ctx, "content")
	require.NoError(t, err)
	assert.Equal(t, []negotiation.MethodID{"alpha", negotiation.MethodDefault}, seq)

	enabled, err := store.EnabledTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []negotiation.TypeID{"interface"}, enabled)
}

func TestDisable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	registry := negotiation.NewRegistry([]negotiation.Provider{stubProvider{
		types: []negotiation.Type{
			{ID: "interface", Configurable: true},
			{ID: "search", Configurable: true},
		},
	}})

	store := negotiation.NewMemoryStore()
	require.NoError(t, registry.InstallTypes(ctx, store))
	require.NoError(t, registry.Disable(ctx, store, "search"))

	assert.Equal(t, []negotiation.TypeID{"interface"}, registry.EnabledTypes(ctx, store))
}

func TestPurge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Build a registry that still knows every method, store an order, then
	// rebuild without one of them: Purge must drop it and keep the rest in
	// relative order.
	full := negotiation.NewRegistry([]negotiation.Provider{testProvider(
		negotiation.Descriptor{ID: "alpha", Weight: 1, Method: stubMethod{code: "fr"}},
		negotiation.Descriptor{ID: "beta", Weight: 2, Method: stubMethod{code: "de"}},
		negotiation.Descriptor{ID: "gamma", Weight: 3, Method: stubMethod{code: "en"}},
	)})

	store := negotiation.NewMemoryStore()
	require.NoError(t, full.SetMethodOrder(ctx, store, testType, []negotiation.WeightedMethod{
		{ID: "gamma", Weight: 0},
		{ID: "beta", Weight: 1},
		{ID: "alpha", Weight: 2},
	}))

	shrunk := negotiation.NewRegistry([]negotiation.Provider{testProvider(
		negotiation.Descriptor{ID: "alpha", Weight: 1, Method: stubMethod{code: "fr"}},
		negotiation.Descriptor{ID: "gamma", Weight: 3, Method: stubMethod{code: "en"}},
	)})
	require.NoError(t, shrunk.Purge(ctx, store))

	seq, err := store.Get(ctx, testType)
	require.NoError(t, err)
	assert.Equal(t, []negotiation.MethodID{"gamma", "alpha"}, seq)
}
