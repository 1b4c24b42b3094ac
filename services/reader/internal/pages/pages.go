// Package pages renders the reader's HTML pages from embedded templates.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/message"

	"mananciall/internal/i18n"
	"mananciall/pkg/bible"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Template names.
const (
	HomeTemplate            = "home.html"
	ArticleTemplate         = "article.html"
	ArticleNotFoundTemplate = "article_not_found.html"
	CatalogTemplate         = "catalog.html"
	ChapterTemplate         = "chapter.html"
	ErrorTemplate           = "error.html"
)

// Renderer executes page templates and converts article markdown to HTML.
type Renderer struct {
	templates *template.Template
	markdown  goldmark.Markdown
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		templates: tmpl,
		// Raw HTML in article bodies is dropped: goldmark escapes it unless
		// html.WithUnsafe is set.
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer)),
	}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// Markdown converts an article body to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Static serves the embedded assets. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Labels translates interface strings for one page language.
type Labels struct {
	Lang    bible.Language
	printer *message.Printer
}

// NewLabels returns labels for lang.
func NewLabels(lang bible.Language) Labels {
	return Labels{Lang: lang, printer: i18n.Printer(lang)}
}

// T translates key, formatting args into it.
func (l Labels) T(key string, args ...any) string {
	if l.printer == nil {
		return fmt.Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"verseRef": bible.FormatVerseReference,
	}
}
