package pages

import (
	"fmt"
	"html/template"
	"net/url"

	"mananciall/pkg/bible"
	"mananciall/pkg/domain"
)

// HomePage lists the devotional cards.
type HomePage struct {
	Cards []domain.ArticleCard
}

// ArticlePage is the devotional reader.
type ArticlePage struct {
	Article  domain.ArticleView
	BodyHTML template.HTML
}

// ArticleNotFoundPage explains which id was looked up.
type ArticleNotFoundPage struct {
	ID string
}

// LanguageOption is one entry of the pt/en toggle.
type LanguageOption struct {
	Lang   bible.Language
	Label  string
	Href   string
	Active bool
}

// CatalogPage lists the books of both testaments.
type CatalogPage struct {
	Labels
	Languages []LanguageOption
	Old       []BookLink
	New       []BookLink
}

// BookLink points at the first chapter of a book.
type BookLink struct {
	ID   string
	Name string
	Href string
}

// VersionOption is one entry of the chapter version selector.
type VersionOption struct {
	Code     string
	Name     string
	Selected bool
}

// ChapterPage shows one chapter in one version.
type ChapterPage struct {
	Labels
	BookID      string
	BookName    string
	Chapter     int
	Version     string
	VersionName string
	Versions    []VersionOption
	Verses      []domain.VerseView
	CatalogHref string
	PrevHref    string
	NextHref    string
}

// ErrorPage is shown for failures outside the article flow.
type ErrorPage struct {
	Labels
	Status  int
	Title   string
	Message string
}

// NewCatalogPage groups books for the catalog in lang.
func NewCatalogPage(lang bible.Language, oldTestament, newTestament []domain.Book) CatalogPage {
	page := CatalogPage{
		Labels: NewLabels(lang),
		Old:    bookLinks(oldTestament, lang),
		New:    bookLinks(newTestament, lang),
	}
	for _, option := range []struct {
		lang  bible.Language
		label string
	}{{bible.Portuguese, "Português"}, {bible.English, "English"}} {
		page.Languages = append(page.Languages, LanguageOption{
			Lang:   option.lang,
			Label:  option.label,
			Href:   "/bible?lang=" + string(option.lang),
			Active: option.lang == lang,
		})
	}
	return page
}

func bookLinks(books []domain.Book, lang bible.Language) []BookLink {
	links := make([]BookLink, 0, len(books))
	for _, b := range books {
		links = append(links, BookLink{
			ID:   b.ID,
			Name: bible.BookName(b.ID, lang),
			Href: ChapterHref(b.ID, 1, lang, ""),
		})
	}
	return links
}

// NewChapterPage builds the chapter reader. maxChapter bounds the next link;
// zero means the bound is unknown and next is always offered.
func NewChapterPage(bookID string, chapter int, lang bible.Language, version string, verses []domain.VerseView, maxChapter int) ChapterPage {
	page := ChapterPage{
		Labels:      NewLabels(lang),
		BookID:      bookID,
		BookName:    bible.BookName(bookID, lang),
		Chapter:     chapter,
		Version:     version,
		VersionName: bible.VersionName(version),
		Verses:      verses,
		CatalogHref: "/bible?lang=" + url.QueryEscape(string(lang)),
	}
	for _, v := range bible.VersionsFor(lang) {
		page.Versions = append(page.Versions, VersionOption{Code: v.Code, Name: v.Name, Selected: v.Code == version})
	}
	if chapter > 1 {
		page.PrevHref = ChapterHref(bookID, chapter-1, lang, version)
	}
	if maxChapter == 0 || chapter < maxChapter {
		page.NextHref = ChapterHref(bookID, chapter+1, lang, version)
	}
	return page
}

// ChapterHref links to a chapter page. An empty version is omitted so the
// language default applies.
func ChapterHref(bookID string, chapter int, lang bible.Language, version string) string {
	q := url.Values{}
	q.Set("lang", string(lang))
	if version != "" {
		q.Set("version", version)
	}
	return fmt.Sprintf("/bible/%s/%d?%s", url.PathEscape(bookID), chapter, q.Encode())
}
