// Package i18n resolves the language of the Bible pages and holds their
// interface strings. Only Portuguese and English are supported.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mananciall/pkg/bible"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the reader's language preference.
	LangCookieName = "mananciall_lang"
)

// supportedTags is index-aligned with supportedLanguages; the first entry is
// the matcher's fallback.
var (
	supportedTags      = []language.Tag{language.BrazilianPortuguese, language.English}
	supportedLanguages = []bible.Language{bible.Portuguese, bible.English}
	tagMatcher         = language.NewMatcher(supportedTags)
)

// Tag returns the language tag used for lang, defaulting to Portuguese.
func Tag(lang bible.Language) language.Tag {
	for i, l := range supportedLanguages {
		if l == lang {
			return supportedTags[i]
		}
	}
	return supportedTags[0]
}

// Resolve determines the page language for the request: the lang query
// parameter, then the preference cookie, then Accept-Language, then pt.
// The bool reports whether the choice came from the query and should be
// persisted with SetLanguageCookie.
func Resolve(r *http.Request) (bible.Language, bool) {
	if r == nil {
		return bible.DefaultLanguage, false
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
		if lang, ok := parse(raw); ok {
			return lang, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := parse(cookie.Value); ok {
			return lang, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, confidence := tagMatcher.Match(tags...); confidence != language.No {
				return supportedLanguages[idx], false
			}
		}
	}
	return bible.DefaultLanguage, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, lang bible.Language) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// parse accepts "pt", "en" and regional variants such as "pt-BR" or "en_US".
func parse(raw string) (bible.Language, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "pt":
		return bible.Portuguese, true
	case "en":
		return bible.English, true
	}
	return "", false
}

// Printer returns a message printer for lang. Keys are the English strings
// registered in messages.go.
func Printer(lang bible.Language) *message.Printer {
	return message.NewPrinter(Tag(lang))
}
