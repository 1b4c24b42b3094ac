package server

import (
	"bytes"
	"net/http"
	"strings"

	"mananciall/internal/i18n"
	"mananciall/internal/util"
	"mananciall/pkg/bible"
	"mananciall/services/reader/internal/app"
	"mananciall/services/reader/internal/pages"
)

// GET /
func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderError(w, r, http.StatusNotFound, bible.DefaultLanguage)
		return
	}
	if !s.readOnlyPage(w, r) {
		return
	}
	cards, err := s.app.ListArticles(r.Context())
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, bible.DefaultLanguage)
		return
	}
	s.render(w, r, http.StatusOK, pages.HomeTemplate, pages.HomePage{Cards: cards})
}

// GET /leitura/{id}
func (s *Server) handleArticlePage(w http.ResponseWriter, r *http.Request) {
	if !s.readOnlyPage(w, r) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/leitura/")
	if id == "" || strings.Contains(id, "/") {
		s.render(w, r, http.StatusNotFound, pages.ArticleNotFoundTemplate, pages.ArticleNotFoundPage{ID: id})
		return
	}
	article, ok, err := s.app.GetArticle(r.Context(), id)
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, bible.DefaultLanguage)
		return
	}
	if !ok {
		s.render(w, r, http.StatusNotFound, pages.ArticleNotFoundTemplate, pages.ArticleNotFoundPage{ID: id})
		return
	}
	body, err := s.pages.Markdown(article.Body)
	if err != nil {
		util.LoggerFromContext(r.Context()).Error("article markdown failed", "article_id", id, "err", err)
		s.renderError(w, r, http.StatusInternalServerError, bible.DefaultLanguage)
		return
	}
	s.render(w, r, http.StatusOK, pages.ArticleTemplate, pages.ArticlePage{Article: article, BodyHTML: body})
}

// GET /bible?lang=
func (s *Server) handleCatalogPage(w http.ResponseWriter, r *http.Request) {
	if !s.readOnlyPage(w, r) {
		return
	}
	lang := s.pageLanguage(w, r)
	books, err := s.app.ListBooks(r.Context())
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, lang)
		return
	}
	oldTestament, newTestament := app.GroupByTestament(books)
	s.render(w, r, http.StatusOK, pages.CatalogTemplate, pages.NewCatalogPage(lang, oldTestament, newTestament))
}

// GET /bible/{book}/{chapter}?lang=&version=
func (s *Server) handleChapterPage(w http.ResponseWriter, r *http.Request) {
	if !s.readOnlyPage(w, r) {
		return
	}
	lang := s.pageLanguage(w, r)
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/bible/"), "/")
	if path == "" {
		http.Redirect(w, r, "/bible", http.StatusFound)
		return
	}
	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		s.renderError(w, r, http.StatusNotFound, lang)
		return
	}
	q, err := app.NewVerseQuery(parts[0], parts[1], "", string(lang), r.URL.Query().Get("version"))
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, lang)
		return
	}
	verses, err := s.app.ResolveVerses(r.Context(), q)
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, lang)
		return
	}
	maxChapter := 0
	if bounds, ok, err := s.app.ChapterBounds(r.Context(), q.BookID); err == nil && ok {
		maxChapter = bounds.MaxChapter
	}
	page := pages.NewChapterPage(q.BookID, q.Chapter, lang, q.Version, verses, maxChapter)
	s.render(w, r, http.StatusOK, pages.ChapterTemplate, page)
}

// pageLanguage resolves the Bible page language and persists an explicit
// choice made through the query string.
func (s *Server) pageLanguage(w http.ResponseWriter, r *http.Request) bible.Language {
	lang, persist := i18n.Resolve(r)
	if persist {
		i18n.SetLanguageCookie(w, lang)
	}
	return lang
}

func (s *Server) readOnlyPage(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD, OPTIONS")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, lang bible.Language) {
	labels := pages.NewLabels(lang)
	page := pages.ErrorPage{Labels: labels, Status: status}
	if status == http.StatusNotFound {
		page.Title = labels.T("Page not found")
	} else {
		page.Title = labels.T("Something went wrong")
		page.Message = labels.T("We could not load this page. Please try again later.")
	}
	s.render(w, r, status, pages.ErrorTemplate, page)
}

// render buffers the page so a template failure still yields a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, name, data); err != nil {
		util.LoggerFromContext(r.Context()).Error("page render failed", "template", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

