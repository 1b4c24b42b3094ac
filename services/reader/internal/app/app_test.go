package app

import (
	"context"
	"errors"
	"testing"

	"mananciall/pkg/domain"
	"mananciall/pkg/store"
)

func newTestApp(t *testing.T) (*App, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	a, err := New(Config{Store: mem, ArticleListLimit: 2})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, mem
}

func TestNewRequiresStoreOrDatabaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without store or database url")
	}
	a, err := New(Config{Store: store.NewMemoryStore()})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.articleListLimit != DefaultArticleListLimit {
		t.Fatalf("articleListLimit = %d", a.articleListLimit)
	}
}

func TestNewVerseQuery(t *testing.T) {
	tests := []struct {
		name                          string
		book, chapter, verse, lang, v string
		want                          VerseQuery
		wantErr                       error
	}{
		{name: "missing book", chapter: "1", wantErr: ErrMissingParameter},
		{name: "missing chapter", book: "gen", wantErr: ErrMissingParameter},
		{name: "blank book", book: "  ", chapter: "1", wantErr: ErrMissingParameter},
		{name: "non-numeric chapter", book: "gen", chapter: "abc", wantErr: ErrInvalidParameter},
		{name: "zero chapter", book: "gen", chapter: "0", wantErr: ErrInvalidParameter},
		{name: "non-numeric verse", book: "gen", chapter: "1", verse: "x", wantErr: ErrInvalidParameter},
		{
			name: "defaults to portuguese and nbv",
			book: "gen", chapter: "1",
			want: VerseQuery{BookID: "gen", Chapter: 1, Lang: "pt", Version: "nbv"},
		},
		{
			name: "english defaults to web",
			book: "jhn", chapter: "3", verse: "16", lang: "en",
			want: VerseQuery{BookID: "jhn", Chapter: 3, Verse: 16, Lang: "en", Version: "web"},
		},
		{
			name: "explicit version wins",
			book: "jhn", chapter: "3", lang: "en", v: "kjv",
			want: VerseQuery{BookID: "jhn", Chapter: 3, Lang: "en", Version: "kjv"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewVerseQuery(tc.book, tc.chapter, tc.verse, tc.lang, tc.v)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("query = %+v, want %+v", got, tc.want)
			}
		})
	}
	if ErrMissingParameter.Error() != "Missing required parameters: book and chapter" {
		t.Fatalf("missing parameter message changed: %q", ErrMissingParameter)
	}
}

func TestResolveVerses(t *testing.T) {
	a, mem := newTestApp(t)
	mem.PutVerses(
		domain.Verse{ID: "jhn_3_17", BookID: "jhn", Chapter: 3, Verse: 17, Text: "base 17"},
		domain.Verse{ID: "jhn_3_16", BookID: "jhn", Chapter: 3, Verse: 16, Text: "base 16",
			Versions: map[string]string{"kjv": "For God so loved the world", "bsb": ""}},
	)
	ctx := context.Background()

	q, _ := NewVerseQuery("jhn", "3", "", "en", "kjv")
	views, err := a.ResolveVerses(ctx, q)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(views) != 2 || views[0].Verse != 16 || views[1].Verse != 17 {
		t.Fatalf("unexpected order: %+v", views)
	}
	if views[0].Text != "For God so loved the world" || views[0].Version != "kjv" || views[0].ResolvedVersion != "kjv" {
		t.Fatalf("verse 16 projection = %+v", views[0])
	}
	if views[1].Text != "base 17" || views[1].Version != "kjv" || views[1].ResolvedVersion != "base" {
		t.Fatalf("verse 17 fallback = %+v", views[1])
	}

	q, _ = NewVerseQuery("jhn", "3", "16", "en", "bsb")
	views, err = a.ResolveVerses(ctx, q)
	if err != nil {
		t.Fatalf("resolve single: %v", err)
	}
	if len(views) != 1 || views[0].Text != "base 16" {
		t.Fatalf("empty translation should fall back to base: %+v", views)
	}

	q, _ = NewVerseQuery("rev", "99", "", "", "")
	views, err = a.ResolveVerses(ctx, q)
	if err != nil {
		t.Fatalf("resolve empty: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", views)
	}
}

func TestRetrievalFailures(t *testing.T) {
	a, mem := newTestApp(t)
	boom := errors.New("connection reset")
	mem.FailWith(boom)
	ctx := context.Background()

	q, _ := NewVerseQuery("gen", "1", "", "", "")
	if _, err := a.ResolveVerses(ctx, q); !errors.Is(err, ErrRetrieval) || !errors.Is(err, boom) {
		t.Fatalf("resolve err = %v", err)
	}
	if _, err := a.ListBooks(ctx); !errors.Is(err, ErrRetrieval) {
		t.Fatalf("list books err = %v", err)
	}
	if _, _, err := a.ChapterBounds(ctx, "gen"); !errors.Is(err, ErrRetrieval) {
		t.Fatalf("chapter bounds err = %v", err)
	}
	if _, _, err := a.GetArticle(ctx, "1"); !errors.Is(err, ErrRetrieval) {
		t.Fatalf("get article err = %v", err)
	}
	if _, err := a.ListArticles(ctx); !errors.Is(err, ErrRetrieval) {
		t.Fatalf("list articles err = %v", err)
	}
	if err := a.Ping(ctx); !errors.Is(err, boom) {
		t.Fatalf("ping err = %v", err)
	}
}

func TestListBooksAndGroupByTestament(t *testing.T) {
	a, mem := newTestApp(t)
	mem.PutBooks(
		domain.Book{ID: "mat", Testament: domain.TestamentNew, OrderIndex: 40},
		domain.Book{ID: "gen", Testament: domain.TestamentOld, OrderIndex: 1},
		domain.Book{ID: "exo", Testament: domain.TestamentOld, OrderIndex: 2},
		domain.Book{ID: "tob", Testament: "deuterocanon", OrderIndex: 67},
	)
	books, err := a.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 4 || books[0].ID != "gen" || books[1].ID != "exo" || books[2].ID != "mat" {
		t.Fatalf("books = %+v", books)
	}
	oldT, newT := GroupByTestament(books)
	if len(oldT) != 2 || oldT[0].ID != "gen" || len(newT) != 1 || newT[0].ID != "mat" {
		t.Fatalf("groups = %+v / %+v", oldT, newT)
	}
}

func TestChapterBounds(t *testing.T) {
	a, mem := newTestApp(t)
	mem.PutVerses(
		domain.Verse{BookID: "rut", Chapter: 1, Verse: 1},
		domain.Verse{BookID: "rut", Chapter: 4, Verse: 22},
	)
	got, ok, err := a.ChapterBounds(context.Background(), "rut")
	if err != nil || !ok || got != (domain.ChapterBounds{BookID: "rut", MaxChapter: 4}) {
		t.Fatalf("bounds = %+v, %v, %v", got, ok, err)
	}
	if _, ok, err := a.ChapterBounds(context.Background(), "xyz"); ok || err != nil {
		t.Fatalf("unknown book = %v, %v", ok, err)
	}
}

func TestGetArticle(t *testing.T) {
	a, mem := newTestApp(t)
	mem.PutArticles(
		domain.Article{ID: "1", ContentStructured: "---\ntitulo: Graça\nversiculo_destaque: João 3:16\n---\n\n# Corpo\n"},
		domain.Article{ID: "2", ContentStructured: "Só corpo"},
		domain.Article{ID: "3", ContentStructured: "---\ntitulo: [quebrado\n---\nTexto"},
		domain.Article{ID: "4", ContentStructured: "   "},
	)
	ctx := context.Background()

	view, ok, err := a.GetArticle(ctx, "1")
	if err != nil || !ok {
		t.Fatalf("get article: %v, %v", ok, err)
	}
	if view.Title != "Graça" || view.Highlight != "João 3:16" || view.Body != "# Corpo\n" || view.Premium {
		t.Fatalf("view = %+v", view)
	}

	view, _, _ = a.GetArticle(ctx, "2")
	if view.Title != "Título Indefinido" || view.Highlight != "" || view.Body != "Só corpo" {
		t.Fatalf("plain view = %+v", view)
	}

	view, ok, err = a.GetArticle(ctx, "3")
	if err != nil || !ok || view.Title != "Título Indefinido" || view.Body != "Texto" {
		t.Fatalf("malformed front matter should degrade: %+v, %v, %v", view, ok, err)
	}

	for _, id := range []string{"4", "99", ""} {
		if _, ok, err := a.GetArticle(ctx, id); ok || err != nil {
			t.Fatalf("article %q: ok=%v err=%v, want not found", id, ok, err)
		}
	}
}

func TestListArticles(t *testing.T) {
	a, mem := newTestApp(t)
	mem.PutArticles(
		domain.Article{ID: "7", ContentStructured: "---\ntitulo: Sete\n---\n"},
		domain.Article{ID: "12", ContentStructured: "---\nversiculo_destaque: Sl 23:1\n---\n"},
		domain.Article{ID: "30", ContentStructured: "corpo"},
	)
	cards, err := a.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("list articles: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected the configured cap of 2, got %d", len(cards))
	}
	want := []domain.ArticleCard{
		{ID: "7", Label: "DIA 07", Title: "Sete", Excerpt: "Clique para ler o devocional completo..."},
		{ID: "12", Label: "DIA 12", Title: "Sem Título", Excerpt: "Sl 23:1"},
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("card %d = %+v, want %+v", i, cards[i], want[i])
		}
	}
}
