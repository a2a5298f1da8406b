package handler

import (
	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/dto"
	"pressroom/src/app/http/response"
	"pressroom/src/core/usecase"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.userService.List(c.Request.Context(), pageQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page.Data, map[string]any{"pagination": page.Meta})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, user, nil)
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, user, nil)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	created, err := h.userService.Create(c.Request.Context(), req.User())
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, created, map[string]any{"message": "User created successfully"})
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(dto.BindingError(err))
		return
	}

	updated, err := h.userService.Update(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, updated, map[string]any{"message": "User updated successfully"})
}

// Profile handles GET /api/users/:id/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user, comments, err := h.userService.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, gin.H{
		"user":     user,
		"comments": comments,
	}, map[string]any{
		"commentCount": len(comments),
	})
}
