package usecase

import (
	"context"
	"log/slog"
	"strings"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// UserService handles user flows.
type UserService struct {
	users    ports.Repository[domain.User]
	comments ports.Repository[domain.Comment]
	log      *slog.Logger
}

func NewUserService(users ports.Repository[domain.User], comments ports.Repository[domain.Comment], log *slog.Logger) *UserService {
	return &UserService{users: users, comments: comments, log: log}
}

func (s *UserService) List(ctx context.Context, page domain.PageRequest) (*ports.Page[domain.User], error) {
	return s.users.List(ctx, domain.Filter{}, page)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found", map[string]any{"userId": id})
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(email)
	page, err := s.users.List(ctx,
		domain.Filter{}.Where("email", email),
		domain.PageRequest{Page: 1, Limit: 1},
	)
	if err != nil {
		return nil, err
	}
	if len(page.Data) == 0 {
		return nil, domain.NewNotFound("User not found", map[string]any{"email": email})
	}
	return &page.Data[0], nil
}

func (s *UserService) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	return s.users.Create(ctx, user)
}

func (s *UserService) Update(ctx context.Context, id string, patch domain.Patch) (*domain.User, error) {
	if patch.Empty() {
		return nil, domain.NewValidation("At least one field must be provided for update", nil)
	}
	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found", map[string]any{"userId": id})
	}
	return user, nil
}

// Profile returns a user together with their comments. Two explicit
// lookups; no backend join.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, []domain.Comment, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.comments.List(ctx,
		domain.Filter{}.Where("userId", user.ID),
		domain.PageRequest{Page: 1, Limit: domain.MaxLimit},
	)
	if err != nil {
		return nil, nil, err
	}
	return user, comments.Data, nil
}
