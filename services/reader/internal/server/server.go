package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mananciall/internal/ratelimit"
	"mananciall/internal/util"
	"mananciall/services/reader/internal/app"
	"mananciall/services/reader/internal/pages"
)

const healthTimeout = 2 * time.Second

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
	// Pages defaults to the embedded templates when nil.
	Pages *pages.Renderer
	// Limiter guards /api/ routes; nil disables rate limiting.
	Limiter        *ratelimit.FixedWindowLimiter
	TrustedProxies *util.TrustedProxies
}

// Server exposes the JSON API and HTML pages of the reader service.
type Server struct {
	app            *app.App
	pages          *pages.Renderer
	limiter        *ratelimit.FixedWindowLimiter
	trustedProxies *util.TrustedProxies
	mux            *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) (*Server, error) {
	renderer := cfg.Pages
	if renderer == nil {
		var err error
		renderer, err = pages.New()
		if err != nil {
			return nil, err
		}
	}
	s := &Server{
		app:            cfg.App,
		pages:          renderer,
		limiter:        cfg.Limiter,
		trustedProxies: cfg.TrustedProxies,
		mux:            http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog("reader", util.WithSecurityHeaders(util.WithCORS(s.mux))))
}

// JSONRoutes are the exact paths answering with JSON documents. Every entry
// must have a handler in jsonHandlers.
var JSONRoutes = []string{
	"/healthz",
	"/api/bible/books",
	"/api/bible/verse",
	"/api/bible/versions",
	"/api/bible/chapters",
}

func (s *Server) jsonHandlers() map[string]http.Handler {
	return map[string]http.Handler{
		"/healthz": http.HandlerFunc(s.handleHealth),

		// bible api
		"/api/bible/books":    s.withRateLimit(s.handleBooks),
		"/api/bible/verse":    s.withRateLimit(s.handleVerse),
		"/api/bible/versions": s.withRateLimit(s.handleVersions),
		"/api/bible/chapters": s.withRateLimit(s.handleChapters),
	}
}

func (s *Server) routes() {
	handlers := s.jsonHandlers()
	for _, path := range JSONRoutes {
		s.mux.Handle(path, handlers[path])
	}
	s.mux.Handle("/api/", s.withRateLimit(func(w http.ResponseWriter, _ *http.Request) {
		notFound(w, "not found")
	}))

	// pages
	s.mux.Handle("/static/", pages.Static())
	s.mux.HandleFunc("/leitura/", s.handleArticlePage)
	s.mux.HandleFunc("/bible", s.handleCatalogPage)
	s.mux.HandleFunc("/bible/", s.handleChapterPage)
	s.mux.HandleFunc("/", s.handleHomePage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := s.app.Ping(ctx); err != nil {
		util.LoggerFromContext(r.Context()).Warn("health check failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readOnly reports whether the method is served; others get 405.
func readOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD, OPTIONS")
	methodNotAllowed(w)
	return false
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, msg)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      errorCodeForReader(status, msg),
		RequestID: strings.TrimSpace(w.Header().Get(util.RequestIDHeader)),
	})
}

func errorCodeForReader(status int, msg string) string {
	message := strings.ToLower(strings.TrimSpace(msg))
	switch {
	case strings.HasPrefix(message, "missing required parameter"):
		return "BIBLE_MISSING_PARAMETERS"
	case strings.HasPrefix(message, "invalid parameter"):
		return "BIBLE_INVALID_PARAMETER"
	case strings.HasPrefix(message, "failed to fetch"):
		return "BIBLE_FETCH_FAILED"
	case message == "book not found":
		return "BIBLE_BOOK_NOT_FOUND"
	case message == "too many requests":
		return "SYSTEM_RATE_LIMITED"
	case message == "method not allowed":
		return "SYSTEM_METHOD_NOT_ALLOWED"
	case message == "not found":
		return "SYSTEM_NOT_FOUND"
	}

	switch status {
	case http.StatusBadRequest:
		return "BIBLE_INVALID_REQUEST"
	case http.StatusNotFound:
		return "SYSTEM_NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "SYSTEM_METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "SYSTEM_RATE_LIMITED"
	default:
		if status >= http.StatusInternalServerError {
			return "SYSTEM_INTERNAL_ERROR"
		}
		return "REQUEST_ERROR"
	}
}
