package server

import (
	"errors"
	"net/http"
	"strings"

	"mananciall/pkg/bible"
	"mananciall/services/reader/internal/app"
)

// Flat messages returned on datastore failures. Causes are logged, never sent.
const (
	msgFetchBooks    = "Failed to fetch books"
	msgFetchVerses   = "Failed to fetch verses"
	msgFetchChapters = "Failed to fetch chapters"
	msgInvalidParam  = "Invalid parameter: chapter and verse must be positive integers"
	msgMissingBook   = "Missing required parameter: book"
)

// GET /api/bible/books
func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	books, err := s.app.ListBooks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgFetchBooks)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

// GET /api/bible/verse?book=&chapter=&verse=&lang=&version=
func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	params := r.URL.Query()
	q, err := app.NewVerseQuery(
		params.Get("book"),
		params.Get("chapter"),
		params.Get("verse"),
		params.Get("lang"),
		params.Get("version"),
	)
	switch {
	case errors.Is(err, app.ErrMissingParameter):
		writeError(w, http.StatusBadRequest, app.ErrMissingParameter.Error())
		return
	case errors.Is(err, app.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, msgInvalidParam)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	verses, err := s.app.ResolveVerses(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgFetchVerses)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"verses": verses})
}

// GET /api/bible/versions?lang=
func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	versions := bible.Versions
	if raw := strings.TrimSpace(r.URL.Query().Get("lang")); raw != "" {
		versions = bible.VersionsFor(bible.ParseLanguage(raw))
	}
	writeJSON(w, http.StatusOK, map[string]any{"versions": versions})
}

// GET /api/bible/chapters?book=
func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	bookID := strings.TrimSpace(r.URL.Query().Get("book"))
	if bookID == "" {
		writeError(w, http.StatusBadRequest, msgMissingBook)
		return
	}
	bounds, ok, err := s.app.ChapterBounds(r.Context(), bookID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgFetchChapters)
		return
	}
	if !ok {
		notFound(w, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, bounds)
}
