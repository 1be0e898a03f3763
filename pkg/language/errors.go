package language

import "errors"

var (
	// ErrEmptySet is returned when a set is built without any languages.
	ErrEmptySet = errors.New("language set cannot be empty")

	// ErrInvalidLanguage is returned when a language is missing required fields.
	ErrInvalidLanguage = errors.New("invalid language definition")

	// ErrDuplicateCode is returned when two languages share a langcode.
	ErrDuplicateCode = errors.New("duplicate langcode in set")

	// ErrMultipleDefaults is returned when more than one language is marked default.
	ErrMultipleDefaults = errors.New("only one language may be the default")
)
