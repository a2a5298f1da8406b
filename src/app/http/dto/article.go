package dto

import (
	"strings"
	"time"

	"pressroom/src/core/domain"
)

const rfc3339Layout = "2006-01-02T15:04:05Z07:00"

// CreateArticleRequest is the body for POST /api/articles.
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Content string `json:"content" binding:"required,min=10,max=10000"`
	Author  string `json:"author" binding:"required,min=2,max=100"`
}

// Article builds the domain entity to persist.
func (r CreateArticleRequest) Article() domain.Article {
	return domain.Article{
		Title:   strings.TrimSpace(r.Title),
		Content: strings.TrimSpace(r.Content),
		Author:  strings.TrimSpace(r.Author),
	}
}

// UpdateArticleRequest is the body for PUT /api/articles/:id. All fields
// optional; at least one must be present.
type UpdateArticleRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=3,max=200"`
	Content *string `json:"content" binding:"omitempty,min=10,max=10000"`
	Author  *string `json:"author" binding:"omitempty,min=2,max=100"`
}

// Patch converts the provided fields into a store patch.
func (r UpdateArticleRequest) Patch() domain.Patch {
	p := domain.Patch{}
	if r.Title != nil {
		p["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		p["content"] = strings.TrimSpace(*r.Content)
	}
	if r.Author != nil {
		p["author"] = strings.TrimSpace(*r.Author)
	}
	return p
}

// ArticleQuery is the query string for GET /api/articles.
type ArticleQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Q         string `form:"q"`
	Author    string `form:"author"`
	DateFrom  string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DateTo    string `form:"dateTo" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=title author createdAt updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// Filter compiles the query into the list filter. Binding already
// guaranteed the timestamps parse.
func (q ArticleQuery) Filter() domain.Filter {
	f := domain.Filter{
		Query:     q.Q,
		SortBy:    q.SortBy,
		SortOrder: domain.SortOrder(q.SortOrder),
	}
	if q.Author != "" {
		f = f.WhereContains("author", q.Author)
	}
	if q.DateFrom != "" || q.DateTo != "" {
		var from, to *time.Time
		if t, err := time.Parse(rfc3339Layout, q.DateFrom); err == nil && q.DateFrom != "" {
			from = &t
		}
		if t, err := time.Parse(rfc3339Layout, q.DateTo); err == nil && q.DateTo != "" {
			to = &t
		}
		f = f.WhereRange("createdAt", from, to)
	}
	return f
}

// PageRequest extracts the pagination request; zero values pick up defaults
// during normalization.
func (q ArticleQuery) PageRequest() domain.PageRequest {
	return domain.PageRequest{Page: q.Page, Limit: q.Limit}
}

// FiltersEcho reproduces the applied filters for the response meta.
func (q ArticleQuery) FiltersEcho() map[string]any {
	echo := map[string]any{}
	if q.Q != "" {
		echo["q"] = q.Q
	}
	if q.Author != "" {
		echo["author"] = q.Author
	}
	if q.DateFrom != "" {
		echo["dateFrom"] = q.DateFrom
	}
	if q.DateTo != "" {
		echo["dateTo"] = q.DateTo
	}
	if q.SortBy != "" {
		echo["sortBy"] = q.SortBy
	}
	if q.SortOrder != "" {
		echo["sortOrder"] = q.SortOrder
	}
	return echo
}
