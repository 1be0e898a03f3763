package negotiation

// TypeID identifies a language type: a logical axis along which the served
// language can vary, such as the interface text or the content language.
type TypeID string

// Built-in language types.
const (
	// TypeInterface drives the language of interface text.
	TypeInterface TypeID = "interface"
	// TypeContent drives the language content is served in.
	TypeContent TypeID = "content"
	// TypeURL drives the language used when generating URLs.
	TypeURL TypeID = "url"
)

// MethodID identifies a negotiation method.
type MethodID string

// Built-in negotiation methods.
const (
	// MethodURL derives the language from the request URL, either from a
	// path prefix or from the host.
	MethodURL MethodID = "url"
	// MethodSession derives the language from a request query parameter,
	// falling back to the session cookie written by earlier requests.
	MethodSession MethodID = "session"
	// MethodCookie derives the language from a plain preference cookie.
	MethodCookie MethodID = "cookie"
	// MethodBrowser derives the language from the Accept-Language header.
	MethodBrowser MethodID = "browser"
	// MethodUser derives the language from the authenticated principal's
	// stored preference.
	MethodUser MethodID = "user"
	// MethodDefault is the registry-injected sentinel method. It always
	// returns the configured default language and is evaluated last. A
	// resolution that exhausts its method chain is also tagged with it.
	MethodDefault MethodID = "default"
)

// Type describes one language type.
type Type struct {
	ID          TypeID
	Name        string
	Description string

	// Configurable types expose their method order to administrators.
	// Non-configurable types carry a fixed method order instead.
	Configurable bool

	// FixedMethods is the declared method order of a non-configurable
	// type. Ignored when Configurable is true.
	FixedMethods []MethodID
}
