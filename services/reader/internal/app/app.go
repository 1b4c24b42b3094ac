package app

import (
	"context"
	"fmt"
	"time"

	"mananciall/internal/util"
	"mananciall/pkg/domain"
	"mananciall/pkg/store"
)

// DefaultArticleListLimit caps the home-page article list.
const DefaultArticleListLimit = 50

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL      string
	Store            store.Store
	Tables           store.Tables
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	ArticleListLimit int
}

// App is the read-only core: Bible catalog, verse resolution and articles.
type App struct {
	store            store.Store
	articleListLimit int
}

// New constructs the application. Without an injected Store it opens the
// Postgres store at DatabaseURL.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("database URL required")
		}
		gormStore, err := store.NewGormStore(
			cfg.DatabaseURL,
			store.WithTables(cfg.Tables),
			store.WithPool(cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime),
		)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
		dataStore = gormStore
	}
	limit := cfg.ArticleListLimit
	if limit <= 0 {
		limit = DefaultArticleListLimit
	}
	return &App{store: dataStore, articleListLimit: limit}, nil
}

// Ping checks the datastore when it supports health checks.
func (a *App) Ping(ctx context.Context) error {
	if p, ok := a.store.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases the datastore when it holds resources.
func (a *App) Close() error {
	if c, ok := a.store.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// ListBooks returns the whole catalog ordered by canonical position.
func (a *App) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := a.store.ListBooks(ctx)
	if err != nil {
		return nil, retrievalError(ctx, "list books", err)
	}
	return books, nil
}

// GroupByTestament splits books into old and new testament, keeping order.
// Books with any other testament value are left out.
func GroupByTestament(books []domain.Book) (oldTestament, newTestament []domain.Book) {
	for _, b := range books {
		switch b.Testament {
		case domain.TestamentOld:
			oldTestament = append(oldTestament, b)
		case domain.TestamentNew:
			newTestament = append(newTestament, b)
		}
	}
	return oldTestament, newTestament
}

// ChapterBounds returns the highest stored chapter for bookID. The bool is
// false when the book has no verses.
func (a *App) ChapterBounds(ctx context.Context, bookID string) (domain.ChapterBounds, bool, error) {
	maxChapter, ok, err := a.store.MaxChapter(ctx, bookID)
	if err != nil {
		return domain.ChapterBounds{}, false, retrievalError(ctx, "chapter bounds", err, "book", bookID)
	}
	if !ok {
		return domain.ChapterBounds{}, false, nil
	}
	return domain.ChapterBounds{BookID: bookID, MaxChapter: maxChapter}, true, nil
}

// retrievalError logs the datastore cause and wraps it in ErrRetrieval.
func retrievalError(ctx context.Context, op string, err error, attrs ...any) error {
	args := append([]any{"op", op, "err", err}, attrs...)
	util.LoggerFromContext(ctx).Error("datastore read failed", args...)
	return fmt.Errorf("%w: %s: %w", ErrRetrieval, op, err)
}
