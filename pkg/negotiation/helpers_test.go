package negotiation_test

import (
	"github.com/dmitrymomot/langkit/pkg/language"
	"github.com/dmitrymomot/langkit/pkg/negotiation"
)

// stubMethod returns a fixed langcode and counts its invocations.
type stubMethod struct {
	code  string
	calls *int
}

func (m stubMethod) Negotiate(r *negotiation.Request, langs language.Set) string {
	if m.calls != nil {
		*m.calls++
	}
	return m.code
}

// stubProvider contributes a fixed list of types and methods.
type stubProvider struct {
	types   []negotiation.Type
	methods []negotiation.Descriptor
}

func (p stubProvider) Types() []negotiation.Type         { return p.types }
func (p stubProvider) Methods() []negotiation.Descriptor { return p.methods }

// testLanguages is the active set used across negotiation tests: en is the
// default, fr and de follow in weight order.
func testLanguages() language.Set {
	return language.MustNewSet(
		language.Language{Code: "en", Name: "English", Default: true},
		language.Language{Code: "fr", Name: "French", Weight: 1},
		language.Language{Code: "de", Name: "German", Weight: 2},
	)
}

// testType is a configurable language type used across tests.
const testType = negotiation.TypeID("interface")

func testProvider(methods ...negotiation.Descriptor) stubProvider {
	return stubProvider{
		types: []negotiation.Type{
			{ID: testType, Name: "Interface text", Configurable: true},
		},
		methods: methods,
	}
}
