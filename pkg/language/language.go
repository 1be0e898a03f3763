package language

import (
	"strings"

	"golang.org/x/text/language"
)

// CodeUnspecified is the langcode used when a language cannot or should not
// be specified. It terminates fallback candidate lists.
const CodeUnspecified = "und"

// maxCodeLength bounds langcode length per RFC 5646 recommendations.
const maxCodeLength = 35

// Direction describes the writing direction of a language.
type Direction string

const (
	// LTR marks left-to-right languages.
	LTR Direction = "ltr"
	// RTL marks right-to-left languages.
	RTL Direction = "rtl"
)

// rtlLanguages lists base langcodes written right-to-left.
var rtlLanguages = map[string]struct{}{
	"ar": {}, "arc": {}, "ckb": {}, "dv": {}, "fa": {}, "he": {},
	"ks": {}, "ps": {}, "sd": {}, "ug": {}, "ur": {}, "yi": {},
}

// DirectionOf returns the writing direction for the given langcode.
// Unknown codes default to LTR.
func DirectionOf(code string) Direction {
	base := NormalizeCode(code)
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	if _, ok := rtlLanguages[base]; ok {
		return RTL
	}
	return LTR
}

// Language is an immutable value describing one configured language.
// It is copied by value on every hand-off, so callers may not observe
// mutations made by other holders of the same language.
type Language struct {
	// Code is the unique langcode, e.g. "en" or "pt-br".
	Code string
	// Name is the human-readable language name.
	Name string
	// Direction is the writing direction.
	Direction Direction
	// Default marks the site default language. At most one language in a
	// Set may be default.
	Default bool
	// Locked languages cannot be edited or deleted and never appear on
	// configuration surfaces, but they still resolve at runtime.
	Locked bool
	// Weight orders languages on display surfaces and in fallback lists.
	Weight int
	// Method records the negotiation method that produced this value.
	// It is set only on languages returned by the negotiation pipeline.
	Method string
}

// IsZero reports whether l is the zero "no language" value.
func (l Language) IsZero() bool {
	return l.Code == ""
}

// New creates a language with the direction derived from the code.
func New(code, name string) Language {
	code = NormalizeCode(code)
	return Language{
		Code:      code,
		Name:      name,
		Direction: DirectionOf(code),
	}
}

// NormalizeCode lowercases and canonicalizes a langcode. Tags that parse as
// BCP 47 are canonicalized through golang.org/x/text; anything else is
// returned lowercased. Oversized codes normalize to the empty string.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxCodeLength {
		return ""
	}
	if tag, err := language.Parse(code); err == nil {
		return strings.ToLower(tag.String())
	}
	return strings.ToLower(code)
}
