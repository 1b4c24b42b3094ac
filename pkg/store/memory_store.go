package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"mananciall/pkg/domain"
)

// MemoryStore keeps rows in-process. It backs tests and local runs without
// a database; rows are loaded through the Put helpers.
type MemoryStore struct {
	mu       sync.RWMutex
	books    []domain.Book
	verses   []domain.Verse
	articles []domain.Article
	err      error
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// PutBooks appends catalog rows in the given (storage) order.
func (m *MemoryStore) PutBooks(books ...domain.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books = append(m.books, books...)
}

// PutVerses appends verse rows in the given (storage) order.
func (m *MemoryStore) PutVerses(verses ...domain.Verse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verses = append(m.verses, verses...)
}

// PutArticles appends article rows in the given (storage) order, replacing
// a row that has the same id in place. Empty content stands for NULL.
func (m *MemoryStore) PutArticles(articles ...domain.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range articles {
		if i := slices.IndexFunc(m.articles, func(cur domain.Article) bool { return cur.ID == a.ID }); i >= 0 {
			m.articles[i] = a
			continue
		}
		m.articles = append(m.articles, a)
	}
}

// FailWith makes every read return err until it is called again with nil.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Ping reports the injected failure, if any.
func (m *MemoryStore) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// ListBooks returns the catalog ordered by order_index.
func (m *MemoryStore) ListBooks(context.Context) ([]domain.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	res := slices.Clone(m.books)
	slices.SortStableFunc(res, func(a, b domain.Book) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
	if res == nil {
		res = []domain.Book{}
	}
	return res, nil
}

// ListVerses filters by book, chapter and optional verse, ordered by verse.
func (m *MemoryStore) ListVerses(_ context.Context, filter VerseFilter) ([]domain.Verse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	res := make([]domain.Verse, 0)
	for _, v := range m.verses {
		if v.BookID != filter.BookID || v.Chapter != filter.Chapter {
			continue
		}
		if filter.Verse > 0 && v.Verse != filter.Verse {
			continue
		}
		res = append(res, v)
	}
	slices.SortStableFunc(res, func(a, b domain.Verse) int {
		return cmp.Compare(a.Verse, b.Verse)
	})
	return res, nil
}

// MaxChapter returns the highest chapter stored for bookID.
func (m *MemoryStore) MaxChapter(_ context.Context, bookID string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return 0, false, m.err
	}
	maxChapter, found := 0, false
	for _, v := range m.verses {
		if v.BookID != bookID {
			continue
		}
		if !found || v.Chapter > maxChapter {
			maxChapter = v.Chapter
			found = true
		}
	}
	return maxChapter, found, nil
}

// GetArticle looks up one article by id.
func (m *MemoryStore) GetArticle(_ context.Context, id string) (domain.Article, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return domain.Article{}, false, m.err
	}
	for _, a := range m.articles {
		if a.ID == id {
			return a, true, nil
		}
	}
	return domain.Article{}, false, nil
}

// ListArticles returns up to limit articles whose content is not NULL, in
// storage order. The Postgres store sorts by id in the database, under the
// column's own type and collation; rows here come back as they were put.
func (m *MemoryStore) ListArticles(_ context.Context, limit int) ([]domain.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	res := make([]domain.Article, 0, len(m.articles))
	if limit <= 0 {
		return res, nil
	}
	for _, a := range m.articles {
		if a.ContentStructured == "" {
			continue
		}
		res = append(res, a)
		if len(res) == limit {
			break
		}
	}
	return res, nil
}
