package store

import (
	"context"

	"mananciall/pkg/domain"
)

// VerseFilter selects verse rows. Verse 0 means every verse of the chapter.
type VerseFilter struct {
	BookID  string
	Chapter int
	Verse   int
}

// Store defines the read operations the reader needs from the datastore.
// Rows are created and edited by an external process; nothing here writes.
type Store interface {
	// books
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// verses
	ListVerses(ctx context.Context, filter VerseFilter) ([]domain.Verse, error)
	MaxChapter(ctx context.Context, bookID string) (int, bool, error)

	// articles
	GetArticle(ctx context.Context, id string) (domain.Article, bool, error)
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)
}

// Pinger is an optional capability used by health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
