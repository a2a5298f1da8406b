// Package usecase contains the application services between the HTTP layer
// and the stores. Services decide when a store's "absent" becomes a
// NotFound error and enforce cross-entity rules the stores cannot.
package usecase

import (
	"context"
	"log/slog"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// ArticleService handles article flows.
type ArticleService struct {
	articles ports.Repository[domain.Article]
	log      *slog.Logger
}

func NewArticleService(articles ports.Repository[domain.Article], log *slog.Logger) *ArticleService {
	return &ArticleService{articles: articles, log: log}
}

func (s *ArticleService) List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*ports.Page[domain.Article], error) {
	return s.articles.List(ctx, filter, page)
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewNotFound("Article not found", map[string]any{"articleId": id})
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	return s.articles.Create(ctx, article)
}

func (s *ArticleService) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Article, error) {
	if patch.Empty() {
		return nil, domain.NewValidation("At least one field must be provided for update", nil)
	}
	article, err := s.articles.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewNotFound("Article not found", map[string]any{"articleId": id})
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewNotFound("Article not found", map[string]any{"articleId": id})
	}
	return article, nil
}
