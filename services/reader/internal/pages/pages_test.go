package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mananciall/pkg/bible"
	"mananciall/pkg/domain"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, name string, data any) string {
	t.Helper()
	var sb strings.Builder
	if err := r.Render(&sb, name, data); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return sb.String()
}

func TestMarkdownEscapesRawHTML(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Markdown("# Graça\n\nTexto **forte**.\n\n<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1>Graça</h1>") || !strings.Contains(html, "<strong>forte</strong>") {
		t.Fatalf("unexpected markdown output: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("raw html should not pass through: %s", html)
	}
}

func TestRenderArticle(t *testing.T) {
	r := newRenderer(t)
	body, _ := r.Markdown("Paz.")
	out := render(t, r, ArticleTemplate, ArticlePage{
		Article:  domain.ArticleView{ID: "7", Title: "Descanso", Highlight: "Sl 23:1"},
		BodyHTML: body,
	})
	for _, want := range []string{"<h1>Descanso</h1>", "Sl 23:1", "Palavra Chave", "ID #7", "<p>Paz.</p>", "Desbloquear Áudio"} {
		if !strings.Contains(out, want) {
			t.Fatalf("article page missing %q", want)
		}
	}

	out = render(t, r, ArticleTemplate, ArticlePage{Article: domain.ArticleView{ID: "8", Title: "Sem destaque"}})
	if strings.Contains(out, "Palavra Chave") {
		t.Fatalf("highlight block should be omitted without a highlight")
	}
}

func TestRenderHomeEscapesTitles(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, HomeTemplate, HomePage{Cards: []domain.ArticleCard{
		{ID: "1", Label: "DIA 01", Title: "<b>Fé</b>", Excerpt: "Clique para ler o devocional completo..."},
	}})
	if !strings.Contains(out, `href="/leitura/1"`) || !strings.Contains(out, "DIA 01") {
		t.Fatalf("home page missing card: %s", out)
	}
	if strings.Contains(out, "<b>Fé</b>") {
		t.Fatalf("card title must be escaped")
	}
}

func TestRenderArticleNotFound(t *testing.T) {
	out := render(t, newRenderer(t), ArticleNotFoundTemplate, ArticleNotFoundPage{ID: "42"})
	if !strings.Contains(out, "Capítulo não encontrado") || !strings.Contains(out, "<b>42</b>") {
		t.Fatalf("not found page = %s", out)
	}
}

func TestCatalogPage(t *testing.T) {
	page := NewCatalogPage(bible.English,
		[]domain.Book{{ID: "gen", Testament: domain.TestamentOld}},
		[]domain.Book{{ID: "jhn", Testament: domain.TestamentNew}},
	)
	if page.Old[0].Name != "Genesis" || page.Old[0].Href != "/bible/gen/1?lang=en" {
		t.Fatalf("old link = %+v", page.Old[0])
	}
	if len(page.Languages) != 2 || page.Languages[0].Active || !page.Languages[1].Active {
		t.Fatalf("languages = %+v", page.Languages)
	}
	out := render(t, newRenderer(t), CatalogTemplate, page)
	for _, want := range []string{"Holy Bible", "Old Testament", "New Testament", "Genesis", "John", `lang="en"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("catalog missing %q", want)
		}
	}

	pt := render(t, newRenderer(t), CatalogTemplate, NewCatalogPage(bible.Portuguese, []domain.Book{{ID: "gen"}}, nil))
	for _, want := range []string{"Bíblia Sagrada", "Antigo Testamento", "Gênesis"} {
		if !strings.Contains(pt, want) {
			t.Fatalf("pt catalog missing %q", want)
		}
	}
	if strings.Contains(pt, "Novo Testamento") {
		t.Fatalf("empty testament section should be hidden")
	}
}

func TestChapterPageNavigation(t *testing.T) {
	first := NewChapterPage("rut", 1, bible.Portuguese, "nbv", nil, 4)
	if first.PrevHref != "" {
		t.Fatalf("first chapter should have no previous link, got %q", first.PrevHref)
	}
	if first.NextHref != "/bible/rut/2?lang=pt&version=nbv" {
		t.Fatalf("next = %q", first.NextHref)
	}
	last := NewChapterPage("rut", 4, bible.Portuguese, "nbv", nil, 4)
	if last.NextHref != "" || last.PrevHref != "/bible/rut/3?lang=pt&version=nbv" {
		t.Fatalf("last chapter links = %q / %q", last.PrevHref, last.NextHref)
	}
	unknown := NewChapterPage("rut", 9, bible.Portuguese, "nbv", nil, 0)
	if unknown.NextHref == "" {
		t.Fatalf("unknown bound should keep next link")
	}
	if len(first.Versions) != 1 || !first.Versions[0].Selected || first.VersionName != "Nova Bíblia Viva" {
		t.Fatalf("pt versions = %+v (%q)", first.Versions, first.VersionName)
	}
	en := NewChapterPage("jhn", 3, bible.English, "kjv", nil, 21)
	if len(en.Versions) != 3 || en.BookName != "John" {
		t.Fatalf("en page = %+v", en)
	}
}

func TestRenderChapter(t *testing.T) {
	r := newRenderer(t)
	page := NewChapterPage("jhn", 3, bible.English, "kjv", []domain.VerseView{
		{ID: "jhn_3_16", BookID: "jhn", Chapter: 3, Verse: 16, Text: "For God so loved the world", Version: "kjv", ResolvedVersion: "kjv"},
	}, 21)
	out := render(t, r, ChapterTemplate, page)
	for _, want := range []string{"John 3", "King James Version", "For God so loved the world", `title="John 3:16"`, "Chapter 3", `<option value="kjv" selected>`} {
		if !strings.Contains(out, want) {
			t.Fatalf("chapter page missing %q:\n%s", want, out)
		}
	}

	empty := render(t, r, ChapterTemplate, NewChapterPage("gen", 1, bible.Portuguese, "nbv", nil, 0))
	if !strings.Contains(empty, "Nenhum versículo encontrado para este capítulo.") || !strings.Contains(empty, "Capítulo 1") {
		t.Fatalf("empty chapter page = %s", empty)
	}
}

func TestRenderError(t *testing.T) {
	labels := NewLabels(bible.Portuguese)
	out := render(t, newRenderer(t), ErrorTemplate, ErrorPage{
		Labels:  labels,
		Status:  http.StatusInternalServerError,
		Title:   labels.T("Something went wrong"),
		Message: labels.T("We could not load this page. Please try again later."),
	})
	if !strings.Contains(out, "Algo deu errado") {
		t.Fatalf("error page = %s", out)
	}
}

func TestStaticServesStylesheet(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/reader.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("content type = %q", ct)
	}
}
