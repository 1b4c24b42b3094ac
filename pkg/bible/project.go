package bible

import "mananciall/pkg/domain"

// Project shapes a stored verse for display in versionCode. The translated
// text is used when present and non-empty; otherwise the base text is shown
// and ResolvedVersion is BaseVersion. Selection never yields empty text
// because of a missing translation.
func Project(v domain.Verse, versionCode string) domain.VerseView {
	text := v.Text
	resolved := BaseVersion
	if translated, ok := v.Versions[versionCode]; ok && translated != "" {
		text = translated
		resolved = versionCode
	}
	return domain.VerseView{
		ID:              v.ID,
		BookID:          v.BookID,
		Chapter:         v.Chapter,
		Verse:           v.Verse,
		Text:            text,
		Version:         versionCode,
		ResolvedVersion: resolved,
		Versions:        v.Versions,
		CrossReferences: v.CrossReferences,
		Themes:          v.Themes,
	}
}
