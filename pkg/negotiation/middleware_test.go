package negotiation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/negotiation"
)

func middlewareNegotiator(t *testing.T) *negotiation.Negotiator {
	t.Helper()
	ctx := context.Background()

	registry := negotiation.NewRegistry([]negotiation.Provider{testProvider(
		negotiation.Descriptor{ID: "cookie", Weight: 0, Method: negotiation.CookieMethod{Name: "lang"}},
		negotiation.Descriptor{ID: "browser", Weight: 1, Method: negotiation.BrowserMethod{}},
	)})
	store := negotiation.NewMemoryStore()
	require.NoError(t, registry.SetMethodOrder(ctx, store, testType, []negotiation.WeightedMethod{
		{ID: "cookie", Weight: 0},
		{ID: "browser", Weight: 1},
	}))

	n, err := negotiation.New(registry, store, testLanguages())
	require.NoError(t, err)
	return n
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("stores the negotiated language in context", func(t *testing.T) {
		t.Parallel()
		n := middlewareNegotiator(t)

		var got string
		handler := negotiation.Middleware(n, negotiation.WithType(testType))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lang, ok := negotiation.GetLanguage(r.Context())
				require.True(t, ok)
				got = lang.Code
			}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", "fr")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "fr", got)
	})

	t.Run("falls back to the default language", func(t *testing.T) {
		t.Parallel()
		n := middlewareNegotiator(t)

		var got string
		var method string
		handler := negotiation.Middleware(n, negotiation.WithType(testType))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lang, _ := negotiation.GetLanguage(r.Context())
				got = lang.Code
				method = lang.Method
			}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, "en", got)
		assert.Equal(t, string(negotiation.MethodDefault), method)
	})

	t.Run("persists the negotiated langcode in a cookie", func(t *testing.T) {
		t.Parallel()
		n := middlewareNegotiator(t)

		handler := negotiation.Middleware(n,
			negotiation.WithType(testType),
			negotiation.WithPersistCookie("lang"),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", "de")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "lang", cookies[0].Name)
		assert.Equal(t, "de", cookies[0].Value)
	})

	t.Run("does not rewrite an up-to-date cookie", func(t *testing.T) {
		t.Parallel()
		n := middlewareNegotiator(t)

		handler := negotiation.Middleware(n,
			negotiation.WithType(testType),
			negotiation.WithPersistCookie("lang"),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("wires the authenticated check into the cache gate", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		calls := 0
		registry := negotiation.NewRegistry([]negotiation.Provider{testProvider(
			negotiation.Descriptor{
				ID:          "gated",
				Weight:      0,
				Method:      stubMethod{code: "fr", calls: &calls},
				CachePolicy: negotiation.CachePageCacheDisabled,
			},
		)})
		store := negotiation.NewMemoryStore()
		require.NoError(t, registry.SetMethodOrder(ctx, store, testType, []negotiation.WeightedMethod{
			{ID: "gated", Weight: 0},
		}))
		n, err := negotiation.New(registry, store, testLanguages())
		require.NoError(t, err)

		handler := negotiation.Middleware(n,
			negotiation.WithType(testType),
			negotiation.WithAuthenticatedFunc(func(r *http.Request) bool { return true }),
			negotiation.WithPageCacheableFunc(func(r *http.Request) bool { return true }),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, 1, calls, "authenticated actors bypass the page cache gate")
	})
}
