package language

import (
	"errors"
	"fmt"
	"slices"
)

// Set is an ordered, immutable collection of languages keyed by code.
// Languages are held in weight order with ties broken by insertion order.
type Set struct {
	langs []Language
	index map[string]int
}

// NewSet builds a set from the given languages. It validates that codes are
// unique and that at most one language is marked default. When no language
// is marked default the first one becomes the default.
func NewSet(langs ...Language) (Set, error) {
	if len(langs) == 0 {
		return Set{}, ErrEmptySet
	}

	ordered := slices.Clone(langs)
	slices.SortStableFunc(ordered, func(a, b Language) int {
		return a.Weight - b.Weight
	})

	index := make(map[string]int, len(ordered))
	defaults := 0
	for i, l := range ordered {
		if l.Code == "" {
			return Set{}, errors.Join(ErrInvalidLanguage, fmt.Errorf("language %q has no code", l.Name))
		}
		if _, exists := index[l.Code]; exists {
			return Set{}, errors.Join(ErrDuplicateCode, fmt.Errorf("code %q appears more than once", l.Code))
		}
		index[l.Code] = i
		if l.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return Set{}, ErrMultipleDefaults
	}
	if defaults == 0 {
		ordered[0].Default = true
	}

	return Set{langs: ordered, index: index}, nil
}

// MustNewSet is like NewSet but panics on invalid input. Intended for
// static configuration and tests.
func MustNewSet(langs ...Language) Set {
	s, err := NewSet(langs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of languages in the set, locked ones included.
func (s Set) Len() int {
	return len(s.langs)
}

// Get returns the language with the given code. Locked languages are
// reachable here: they participate in runtime resolution.
func (s Set) Get(code string) (Language, bool) {
	i, ok := s.index[code]
	if !ok {
		return Language{}, false
	}
	return s.langs[i], true
}

// Default returns the default language of the set.
func (s Set) Default() Language {
	for _, l := range s.langs {
		if l.Default {
			return l
		}
	}
	return Language{}
}

// All returns every language in weight order.
func (s Set) All() []Language {
	return slices.Clone(s.langs)
}

// Unlocked returns the languages that may appear on configuration
// surfaces, in weight order.
func (s Set) Unlocked() []Language {
	out := make([]Language, 0, len(s.langs))
	for _, l := range s.langs {
		if !l.Locked {
			out = append(out, l)
		}
	}
	return out
}

// Codes returns the unlocked langcodes in weight order.
func (s Set) Codes() []string {
	unlocked := s.Unlocked()
	codes := make([]string, len(unlocked))
	for i, l := range unlocked {
		codes[i] = l.Code
	}
	return codes
}
