package dto

import (
	"strings"

	"pressroom/src/core/domain"
)

// CreateCommentRequest is the body for POST /api/comments.
type CreateCommentRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Content   string `json:"content" binding:"required,min=3,max=1000"`
}

// Comment builds the domain entity to persist.
func (r CreateCommentRequest) Comment() domain.Comment {
	return domain.Comment{
		ArticleID: r.ArticleID,
		UserID:    r.UserID,
		Content:   strings.TrimSpace(r.Content),
	}
}
