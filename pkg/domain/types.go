package domain

type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Book is one entry of the canonical book catalog.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Testament  Testament `json:"testament"`
	OrderIndex int       `json:"order_index"`
}

// Verse is a stored verse row. Text holds the base translation; Versions is a
// sparse mapping from version code to translated text.
type Verse struct {
	ID              string            `json:"id"`
	BookID          string            `json:"book_id"`
	Chapter         int               `json:"chapter"`
	Verse           int               `json:"verse"`
	Text            string            `json:"text"`
	Versions        map[string]string `json:"versions,omitempty"`
	CrossReferences []string          `json:"cross_references,omitempty"`
	Themes          []string          `json:"themes,omitempty"`
}

// VerseView is a verse shaped for display in one translation.
// Version echoes the requested code; ResolvedVersion names the text actually
// shown, which is "base" when the requested translation was missing.
type VerseView struct {
	ID              string            `json:"id"`
	BookID          string            `json:"book_id"`
	Chapter         int               `json:"chapter"`
	Verse           int               `json:"verse"`
	Text            string            `json:"text"`
	Version         string            `json:"version"`
	ResolvedVersion string            `json:"resolved_version"`
	Versions        map[string]string `json:"versions,omitempty"`
	CrossReferences []string          `json:"cross_references,omitempty"`
	Themes          []string          `json:"themes,omitempty"`
}

// Article is a raw content record: markdown with a leading front-matter block.
type Article struct {
	ID                string `json:"id"`
	ContentStructured string `json:"content_structured"`
}

// ArticleView is an article split into its metadata and markdown body.
// Premium is reserved for gated audio and is always false.
type ArticleView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Highlight string `json:"highlight,omitempty"`
	Body      string `json:"body"`
	Premium   bool   `json:"premium"`
}

// ChapterBounds reports the highest chapter stored for a book.
type ChapterBounds struct {
	BookID     string `json:"book_id"`
	MaxChapter int    `json:"max_chapter"`
}

// ArticleCard is the home-page summary of an article.
type ArticleCard struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}
