package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/src/core/domain"
)

func seedArticles(t *testing.T, store *MemoryStore[domain.Article, *domain.Article]) []domain.Article {
	t.Helper()
	ctx := context.Background()

	fixtures := []domain.Article{
		{Title: "Getting Started with Go", Content: "Go is a statically typed language built for simplicity.", Author: "John Doe"},
		{Title: "Advanced Concurrency Patterns", Content: "Channels and goroutines compose into powerful pipelines.", Author: "Jane Smith"},
		{Title: "Clean Architecture Principles", Content: "Dependencies must always point inward toward the domain.", Author: "Bob Johnson"},
		{Title: "Profiling Go Services", Content: "pprof makes finding hot paths in Go services straightforward.", Author: "Jane Smith"},
		{Title: "Database Indexing Basics", Content: "A good index turns a scan into a lookup.", Author: "John Doe"},
	}

	var out []domain.Article
	for _, f := range fixtures {
		created, err := store.Create(ctx, f)
		require.NoError(t, err)
		out = append(out, *created)
	}
	return out
}

func TestMemoryStoreListTotalIgnoresPaging(t *testing.T) {
	store := NewMemoryArticleStore()
	seedArticles(t, store)
	ctx := context.Background()

	filter := domain.Filter{}.WhereContains("author", "jane")

	for _, req := range []domain.PageRequest{
		{Page: 1, Limit: 1},
		{Page: 2, Limit: 1},
		{Page: 1, Limit: 50},
	} {
		page, err := store.List(ctx, filter, req)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Meta.Total, "page=%d limit=%d", req.Page, req.Limit)
	}
}

func TestMemoryStoreListPartitionsExactly(t *testing.T) {
	store := NewMemoryArticleStore()
	created := seedArticles(t, store)
	ctx := context.Background()

	seen := map[string]int{}
	page := 1
	for {
		result, err := store.List(ctx, domain.Filter{}, domain.PageRequest{Page: page, Limit: 2})
		require.NoError(t, err)
		for _, a := range result.Data {
			seen[a.ID]++
		}
		if !result.Meta.HasNext {
			break
		}
		page++
	}

	assert.Len(t, seen, len(created), "every record appears")
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s appears exactly once", id)
	}
}

func TestMemoryStoreListQueryMatchesTextFields(t *testing.T) {
	store := NewMemoryArticleStore()
	seedArticles(t, store)
	ctx := context.Background()

	// Matches title on one record and content on another.
	page, err := store.List(ctx, domain.Filter{Query: "go"}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, page.Meta.Total, len(page.Data))
	assert.GreaterOrEqual(t, page.Meta.Total, 2)
}

func TestMemoryStoreListDateRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store := NewMemoryStore[domain.Article, *domain.Article](MemoryConfig[domain.Article]{
		Label:  "Article",
		Fields: articleFields(),
		Text:   []string{"title", "content"},
		Unique: []string{"title"},
		Now: func() time.Time {
			tick++
			return now.Add(time.Duration(tick) * 24 * time.Hour)
		},
	})
	seedArticles(t, store)
	ctx := context.Background()

	from := now.Add(2 * 24 * time.Hour)
	to := now.Add(4 * 24 * time.Hour)
	page, err := store.List(ctx, domain.Filter{}.WhereRange("createdAt", &from, &to), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Meta.Total)
}

func TestMemoryStoreListSort(t *testing.T) {
	store := NewMemoryArticleStore()
	seedArticles(t, store)
	ctx := context.Background()

	page, err := store.List(ctx,
		domain.Filter{}.SortedBy("title", domain.SortAsc),
		domain.PageRequest{},
	)
	require.NoError(t, err)
	for i := 1; i < len(page.Data); i++ {
		assert.LessOrEqual(t, page.Data[i-1].Title, page.Data[i].Title)
	}

	desc, err := store.List(ctx,
		domain.Filter{}.SortedBy("title", domain.SortDesc),
		domain.PageRequest{},
	)
	require.NoError(t, err)
	for i := 1; i < len(desc.Data); i++ {
		assert.GreaterOrEqual(t, desc.Data[i-1].Title, desc.Data[i].Title)
	}
}

func TestMemoryStoreGetInvalidIDIsAbsent(t *testing.T) {
	store := NewMemoryArticleStore()
	seedArticles(t, store)

	for _, id := range []string{"", "not-a-real-id", "   ", "1; DROP TABLE"} {
		got, err := store.Get(context.Background(), id)
		assert.NoError(t, err, "id=%q", id)
		assert.Nil(t, got, "id=%q", id)
	}
}

func TestMemoryStoreCreateAssignsIdentity(t *testing.T) {
	store := NewMemoryArticleStore()
	created, err := store.Create(context.Background(), domain.Article{
		Title: "Fresh", Content: "Something new entirely.", Author: "Ann",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestMemoryStoreCreateDuplicateUnique(t *testing.T) {
	store := NewMemoryArticleStore()
	seedArticles(t, store)
	ctx := context.Background()

	before, err := store.List(ctx, domain.Filter{}, domain.PageRequest{})
	require.NoError(t, err)

	_, err = store.Create(ctx, domain.Article{
		Title: "getting started with go", Content: "Duplicate title, different case.", Author: "Eve",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	de, _ := domain.AsError(err)
	assert.Contains(t, de.Details, "title")

	after, err := store.List(ctx, domain.Filter{}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, before.Meta.Total, after.Meta.Total, "record count unchanged")
}

func TestMemoryStoreUpdateTouchesTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store := NewMemoryStore[domain.Article, *domain.Article](MemoryConfig[domain.Article]{
		Label:  "Article",
		Fields: articleFields(),
		Unique: []string{"title"},
		Apply: func(a *domain.Article, p domain.Patch) {
			if v, ok := p["title"].(string); ok {
				a.Title = v
			}
		},
		Now: func() time.Time {
			tick++
			return now.Add(time.Duration(tick) * time.Minute)
		},
	})

	ctx := context.Background()
	created, err := store.Create(ctx, domain.Article{Title: "Before", Content: "Original content here.", Author: "Ann"})
	require.NoError(t, err)

	// Empty patch still refreshes updatedAt.
	updated, err := store.Update(ctx, created.ID, domain.Patch{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	renamed, err := store.Update(ctx, created.ID, domain.Patch{"title": "After"})
	require.NoError(t, err)
	assert.Equal(t, "After", renamed.Title)
}

func TestMemoryStoreUpdateDuplicateUnique(t *testing.T) {
	store := NewMemoryArticleStore()
	created := seedArticles(t, store)
	ctx := context.Background()

	// Taking another record's title fails, regardless of case.
	_, err := store.Update(ctx, created[1].ID, domain.Patch{"title": "getting started with go"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	de, _ := domain.AsError(err)
	assert.Contains(t, de.Details, "title")

	// The record is left untouched.
	got, err := store.Get(ctx, created[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created[1].Title, got.Title)
	assert.Equal(t, created[1].UpdatedAt, got.UpdatedAt)

	// Re-stating the record's own title is not a conflict.
	same, err := store.Update(ctx, created[1].ID, domain.Patch{"title": created[1].Title})
	require.NoError(t, err)
	assert.Equal(t, created[1].Title, same.Title)
}

func TestMemoryStoreUpdateAbsent(t *testing.T) {
	store := NewMemoryArticleStore()
	got, err := store.Update(context.Background(), "missing", domain.Patch{"title": "X"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreDeleteReturnsRemoved(t *testing.T) {
	store := NewMemoryArticleStore()
	created := seedArticles(t, store)
	ctx := context.Background()

	removed, err := store.Delete(ctx, created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, created[0].Title, removed.Title)

	again, err := store.Delete(ctx, created[0].ID)
	assert.NoError(t, err)
	assert.Nil(t, again)

	page, err := store.List(ctx, domain.Filter{}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, len(created)-1, page.Meta.Total)
}

func TestMemoryUserStoreUniqueEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	_, err := store.Create(ctx, domain.User{Email: "a@example.com", Name: "A", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = store.Create(ctx, domain.User{Email: "A@example.com", Name: "B", Role: domain.RoleUser})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	de, _ := domain.AsError(err)
	assert.Contains(t, de.Details, "email")
}
