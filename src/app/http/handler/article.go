// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Binding and validating HTTP requests
// - Calling use case methods
// - Wrapping results in the response envelope
//
// Handlers never build error payloads themselves: failures are attached to
// the context with c.Error and translated by the error boundary middleware.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/dto"
	"pressroom/src/app/http/response"
	"pressroom/src/core/domain"
	"pressroom/src/core/usecase"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService *usecase.ArticleService
}

func NewArticleHandler(articleService *usecase.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// List handles GET /api/articles.
func (h *ArticleHandler) List(c *gin.Context) {
	var q dto.ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	page, err := h.articleService.List(c.Request.Context(), q.Filter(), q.PageRequest())
	if err != nil {
		c.Error(err)
		return
	}

	data := make([]gin.H, 0, len(page.Data))
	for _, a := range page.Data {
		data = append(data, gin.H{
			"id":          a.ID,
			"title":       a.Title,
			"content":     a.Content,
			"author":      a.Author,
			"createdAt":   a.CreatedAt,
			"updatedAt":   a.UpdatedAt,
			"readingTime": a.ReadingTime(),
		})
	}

	response.OK(c, data, map[string]any{
		"pagination": page.Meta,
		"filters":    q.FiltersEcho(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// Get handles GET /api/articles/:id with a trimmed field set.
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, gin.H{
		"id":      article.ID,
		"title":   article.Title,
		"content": article.Content,
		"author":  article.Author,
	}, map[string]any{
		"readingTime": article.ReadingTime(),
	})
}

// Details handles GET /api/articles/:id/details with the full record and
// content statistics.
func (h *ArticleHandler) Details(c *gin.Context) {
	article, err := h.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, article, map[string]any{
		"readingTime":    article.ReadingTime(),
		"wordCount":      article.WordCount(),
		"characterCount": len(article.Content),
	})
}

// Create handles POST /api/articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	created, err := h.articleService.Create(c.Request.Context(), req.Article())
	if err != nil {
		c.Error(err)
		return
	}

	response.Created(c, created, map[string]any{
		"message":     "Article created successfully",
		"readingTime": created.ReadingTime(),
		"wordCount":   created.WordCount(),
	})
}

// Update handles PUT /api/articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	updated, err := h.articleService.Update(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, updated, map[string]any{
		"message": "Article updated successfully",
	})
}

// Delete handles DELETE /api/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	if _, err := h.articleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

// pageQuery binds optional page/limit query parameters shared by list
// endpoints without article-specific filters.
func pageQuery(c *gin.Context) domain.PageRequest {
	var q struct {
		Page  int `form:"page"`
		Limit int `form:"limit"`
	}
	// Invalid values fall back to defaults during normalization.
	_ = c.ShouldBindQuery(&q)
	return domain.PageRequest{Page: q.Page, Limit: q.Limit}
}
