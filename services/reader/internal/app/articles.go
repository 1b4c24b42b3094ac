package app

import (
	"context"
	"fmt"
	"strings"

	"mananciall/internal/util"
	"mananciall/pkg/domain"
	"mananciall/pkg/frontmatter"
)

// Front-matter keys read from article records.
const (
	metaTitle     = "titulo"
	metaHighlight = "versiculo_destaque"
)

const (
	untitledArticle = "Título Indefinido"
	untitledCard    = "Sem Título"
	defaultExcerpt  = "Clique para ler o devocional completo..."
)

// GetArticle loads one article and splits it into metadata and body. The
// bool is false when the record is missing or has no content. Malformed
// front matter is logged and rendered with empty metadata.
func (a *App) GetArticle(ctx context.Context, id string) (domain.ArticleView, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ArticleView{}, false, nil
	}
	article, ok, err := a.store.GetArticle(ctx, id)
	if err != nil {
		return domain.ArticleView{}, false, retrievalError(ctx, "get article", err, "article_id", id)
	}
	if !ok || strings.TrimSpace(article.ContentStructured) == "" {
		return domain.ArticleView{}, false, nil
	}
	doc := parseArticle(ctx, article)
	return domain.ArticleView{
		ID:        article.ID,
		Title:     doc.Meta.String(metaTitle, untitledArticle),
		Highlight: doc.Meta.String(metaHighlight, ""),
		Body:      doc.Body,
		Premium:   false,
	}, true, nil
}

// ListArticles returns the home-page cards, capped at the configured limit
// and ordered by id.
func (a *App) ListArticles(ctx context.Context) ([]domain.ArticleCard, error) {
	articles, err := a.store.ListArticles(ctx, a.articleListLimit)
	if err != nil {
		return nil, retrievalError(ctx, "list articles", err)
	}
	cards := make([]domain.ArticleCard, 0, len(articles))
	for _, article := range articles {
		doc := parseArticle(ctx, article)
		cards = append(cards, domain.ArticleCard{
			ID:      article.ID,
			Label:   dayLabel(article.ID),
			Title:   doc.Meta.String(metaTitle, untitledCard),
			Excerpt: doc.Meta.String(metaHighlight, defaultExcerpt),
		})
	}
	return cards, nil
}

func parseArticle(ctx context.Context, article domain.Article) frontmatter.Document {
	doc, err := frontmatter.Parse(article.ContentStructured)
	if err != nil {
		util.LoggerFromContext(ctx).Warn("article front matter ignored", "article_id", article.ID, "err", err)
	}
	return doc
}

// dayLabel renders the card label, zero-padding short ids: "DIA 07".
func dayLabel(id string) string {
	if len(id) < 2 {
		id = strings.Repeat("0", 2-len(id)) + id
	}
	return fmt.Sprintf("DIA %s", id)
}
