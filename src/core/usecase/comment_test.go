package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/src/core/domain"
	"pressroom/src/infra/logger"
	"pressroom/src/infra/repo"
)

func commentFixture(t *testing.T) (*CommentService, domain.Article, domain.User) {
	t.Helper()
	ctx := context.Background()

	stores := repo.NewMemoryStores()
	article, err := stores.Articles.Create(ctx, domain.Article{
		Title: "A Title", Content: "Some content long enough.", Author: "Ann",
	})
	require.NoError(t, err)
	user, err := stores.Users.Create(ctx, domain.User{
		Email: "ann@example.com", Name: "Ann", Role: domain.RoleUser,
	})
	require.NoError(t, err)

	svc := NewCommentService(stores.Comments, stores.Articles, stores.Users, logger.Discard())
	return svc, *article, *user
}

func TestCommentCreate(t *testing.T) {
	svc, article, user := commentFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Comment{
		ArticleID: article.ID, UserID: user.ID, Content: "Nice piece.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, article.ID, created.ArticleID)
}

func TestCommentCreateMissingArticle(t *testing.T) {
	svc, _, user := commentFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Comment{
		ArticleID: "missing-article", UserID: user.ID, Content: "Nice piece.",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	de, _ := domain.AsError(err)
	assert.Equal(t, "Article not found", de.Message)
	assert.Equal(t, "missing-article", de.Details["articleId"])

	// Nothing persisted.
	page, err := svc.ByUser(ctx, user.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Meta.Total)
}

func TestCommentCreateMissingUser(t *testing.T) {
	svc, article, _ := commentFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Comment{
		ArticleID: article.ID, UserID: "missing-user", Content: "Nice piece.",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	de, _ := domain.AsError(err)
	assert.Equal(t, "User not found", de.Message)
	assert.Equal(t, "missing-user", de.Details["userId"])

	page, err := svc.ByArticle(ctx, article.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Meta.Total)
}

func TestCommentGetAbsentEscalates(t *testing.T) {
	svc, _, _ := commentFixture(t)

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCommentDetailResolvesReferences(t *testing.T) {
	svc, article, user := commentFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Comment{
		ArticleID: article.ID, UserID: user.ID, Content: "Nice piece.",
	})
	require.NoError(t, err)

	comment, gotArticle, gotUser, err := svc.Detail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.ID)
	require.NotNil(t, gotArticle)
	assert.Equal(t, article.Title, gotArticle.Title)
	require.NotNil(t, gotUser)
	assert.Equal(t, user.Email, gotUser.Email)
}

func TestCommentDeleteReturnsRemoved(t *testing.T) {
	svc, article, user := commentFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Comment{
		ArticleID: article.ID, UserID: user.ID, Content: "Nice piece.",
	})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
