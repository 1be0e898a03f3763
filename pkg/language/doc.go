// Package language defines the immutable language value type and the ordered
// language set used throughout langkit.
//
// A Language is a plain value record: copying it on every hand-off means a
// cached resolution result can be shared by many callers without any of them
// observing mutations made by another. A Set is an ordered, code-indexed
// collection with exactly one default language; locked languages stay out of
// configuration surfaces but remain resolvable at runtime.
//
// Langcodes are normalized through golang.org/x/text where they parse as
// BCP 47 tags and lowercased otherwise, so "en-US", "en-us" and "EN-US" all
// address the same language.
package language
