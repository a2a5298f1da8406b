package usecase

import (
	"context"
	"log/slog"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// CommentService handles comment flows, including the referential checks
// a comment needs against articles and users.
type CommentService struct {
	comments ports.Repository[domain.Comment]
	articles ports.Repository[domain.Article]
	users    ports.Repository[domain.User]
	log      *slog.Logger
}

func NewCommentService(
	comments ports.Repository[domain.Comment],
	articles ports.Repository[domain.Article],
	users ports.Repository[domain.User],
	log *slog.Logger,
) *CommentService {
	return &CommentService{comments: comments, articles: articles, users: users, log: log}
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NewNotFound("Comment not found", map[string]any{"commentId": id})
	}
	return comment, nil
}

// Detail returns a comment with its referenced article and user resolved.
// Two sequential lookups replace any backend join; references that were
// deleted since the comment was written come back nil.
func (s *CommentService) Detail(ctx context.Context, id string) (*domain.Comment, *domain.Article, *domain.User, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	article, err := s.articles.Get(ctx, comment.ArticleID)
	if err != nil {
		return nil, nil, nil, err
	}
	user, err := s.users.Get(ctx, comment.UserID)
	if err != nil {
		return nil, nil, nil, err
	}
	return comment, article, user, nil
}

func (s *CommentService) ByArticle(ctx context.Context, articleID string, page domain.PageRequest) (*ports.Page[domain.Comment], error) {
	return s.comments.List(ctx, domain.Filter{}.Where("articleId", articleID), page)
}

func (s *CommentService) ByUser(ctx context.Context, userID string, page domain.PageRequest) (*ports.Page[domain.Comment], error) {
	return s.comments.List(ctx, domain.Filter{}.Where("userId", userID), page)
}

// Create verifies both referenced entities exist before persisting, naming
// the specific missing reference. The check is a latency/UX optimization:
// no lock is held across the gap, and the backend's own constraints remain
// the final authority.
func (s *CommentService) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	article, err := s.articles.Get(ctx, comment.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewNotFound("Article not found", map[string]any{"articleId": comment.ArticleID})
	}

	user, err := s.users.Get(ctx, comment.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found", map[string]any{"userId": comment.UserID})
	}

	return s.comments.Create(ctx, comment)
}

func (s *CommentService) Delete(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.comments.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NewNotFound("Comment not found", map[string]any{"commentId": id})
	}
	return comment, nil
}
