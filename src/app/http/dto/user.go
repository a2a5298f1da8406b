package dto

import (
	"strings"

	"pressroom/src/core/domain"
)

// CreateUserRequest is the body for POST /api/users.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Role  string `json:"role" binding:"omitempty,oneof=admin user moderator"`
}

// User builds the domain entity to persist. Emails are lowercased; role
// defaults to "user".
func (r CreateUserRequest) User() domain.User {
	role := domain.Role(r.Role)
	if role == "" {
		role = domain.RoleUser
	}
	return domain.User{
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
		Name:  strings.TrimSpace(r.Name),
		Role:  role,
	}
}

// UpdateUserRequest is the body for PUT /api/users/:id.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email,max=255"`
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role  *string `json:"role" binding:"omitempty,oneof=admin user moderator"`
}

// Patch converts the provided fields into a store patch.
func (r UpdateUserRequest) Patch() domain.Patch {
	p := domain.Patch{}
	if r.Email != nil {
		p["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Name != nil {
		p["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Role != nil {
		p["role"] = *r.Role
	}
	return p
}
