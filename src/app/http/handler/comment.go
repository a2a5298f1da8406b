package handler

import (
	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/dto"
	"pressroom/src/app/http/response"
	"pressroom/src/core/usecase"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Get handles GET /api/comments/:id with references resolved.
func (h *CommentHandler) Get(c *gin.Context) {
	comment, article, user, err := h.commentService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	meta := map[string]any{}
	if article != nil {
		meta["article"] = gin.H{"id": article.ID, "title": article.Title}
	}
	if user != nil {
		meta["user"] = gin.H{"id": user.ID, "name": user.Name, "email": user.Email}
	}
	response.OK(c, comment, meta)
}

// ByArticle handles GET /api/comments/article/:articleId.
func (h *CommentHandler) ByArticle(c *gin.Context) {
	page, err := h.commentService.ByArticle(c.Request.Context(), c.Param("articleId"), pageQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page.Data, map[string]any{"pagination": page.Meta})
}

// ByUser handles GET /api/comments/user/:userId.
func (h *CommentHandler) ByUser(c *gin.Context) {
	page, err := h.commentService.ByUser(c.Request.Context(), c.Param("userId"), pageQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page.Data, map[string]any{"pagination": page.Meta})
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	created, err := h.commentService.Create(c.Request.Context(), req.Comment())
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, created, map[string]any{"message": "Comment created successfully"})
}

// Delete handles DELETE /api/comments/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	if _, err := h.commentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
