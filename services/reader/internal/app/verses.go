package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"mananciall/pkg/bible"
	"mananciall/pkg/domain"
	"mananciall/pkg/store"
)

// VerseQuery is a validated verse lookup. Verse 0 selects the whole chapter.
type VerseQuery struct {
	BookID  string
	Chapter int
	Verse   int
	Lang    bible.Language
	Version string
}

// NewVerseQuery validates raw request parameters. Book and chapter are
// required; verse, lang and version are optional. The version defaults to
// the language's default version.
func NewVerseQuery(book, chapter, verse, lang, version string) (VerseQuery, error) {
	book = strings.TrimSpace(book)
	chapter = strings.TrimSpace(chapter)
	if book == "" || chapter == "" {
		return VerseQuery{}, ErrMissingParameter
	}
	q := VerseQuery{BookID: book, Lang: bible.ParseLanguage(lang)}

	n, err := parsePositive(chapter)
	if err != nil {
		return VerseQuery{}, fmt.Errorf("%w: chapter %q", ErrInvalidParameter, chapter)
	}
	q.Chapter = n
	if verse = strings.TrimSpace(verse); verse != "" {
		n, err := parsePositive(verse)
		if err != nil {
			return VerseQuery{}, fmt.Errorf("%w: verse %q", ErrInvalidParameter, verse)
		}
		q.Verse = n
	}

	q.Version = strings.TrimSpace(version)
	if q.Version == "" {
		q.Version = bible.DefaultVersion(q.Lang)
	}
	return q, nil
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// ResolveVerses fetches the requested verses ordered by verse number and
// projects each one onto the query's version. An empty result is not an error.
func (a *App) ResolveVerses(ctx context.Context, q VerseQuery) ([]domain.VerseView, error) {
	rows, err := a.store.ListVerses(ctx, store.VerseFilter{
		BookID:  q.BookID,
		Chapter: q.Chapter,
		Verse:   q.Verse,
	})
	if err != nil {
		return nil, retrievalError(ctx, "list verses", err, "book", q.BookID, "chapter", q.Chapter, "verse", q.Verse)
	}
	views := make([]domain.VerseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, bible.Project(row, q.Version))
	}
	return views, nil
}
