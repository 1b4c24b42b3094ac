package bible

import "strings"

// Language is a UI language code. Only pt and en are supported; other values
// are carried through unchanged and treated as "not Portuguese".
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
)

// DefaultLanguage is used when a request does not name a language.
const DefaultLanguage = Portuguese

// ParseLanguage normalizes a raw language value. Empty input yields the
// default language; anything else is lowercased and kept as is.
func ParseLanguage(raw string) Language {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultLanguage
	}
	return Language(raw)
}

// Supported reports whether lang is one of the two UI languages.
func (l Language) Supported() bool {
	return l == Portuguese || l == English
}

// DefaultVersion returns the version code shown when none was requested:
// nbv for Portuguese and web for every other language.
func DefaultVersion(lang Language) string {
	if lang == Portuguese {
		return "nbv"
	}
	return "web"
}
