package repo

import (
	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// Article/user/comment field accessors shared by the in-memory stores.
// Field names are wire names; they double as the filter and sort vocabulary.

func articleFields() map[string]func(domain.Article) any {
	return map[string]func(domain.Article) any{
		"title":     func(a domain.Article) any { return a.Title },
		"content":   func(a domain.Article) any { return a.Content },
		"author":    func(a domain.Article) any { return a.Author },
		"createdAt": func(a domain.Article) any { return a.CreatedAt },
		"updatedAt": func(a domain.Article) any { return a.UpdatedAt },
	}
}

func userFields() map[string]func(domain.User) any {
	return map[string]func(domain.User) any{
		"email":     func(u domain.User) any { return u.Email },
		"name":      func(u domain.User) any { return u.Name },
		"role":      func(u domain.User) any { return string(u.Role) },
		"createdAt": func(u domain.User) any { return u.CreatedAt },
		"updatedAt": func(u domain.User) any { return u.UpdatedAt },
	}
}

func commentFields() map[string]func(domain.Comment) any {
	return map[string]func(domain.Comment) any{
		"articleId": func(c domain.Comment) any { return c.ArticleID },
		"userId":    func(c domain.Comment) any { return c.UserID },
		"content":   func(c domain.Comment) any { return c.Content },
		"createdAt": func(c domain.Comment) any { return c.CreatedAt },
		"updatedAt": func(c domain.Comment) any { return c.UpdatedAt },
	}
}

// NewMemoryArticleStore builds an in-memory article store.
func NewMemoryArticleStore() *MemoryStore[domain.Article, *domain.Article] {
	return NewMemoryStore[domain.Article, *domain.Article](MemoryConfig[domain.Article]{
		Label:  "Article",
		Fields: articleFields(),
		Text:   []string{"title", "content"},
		Unique: []string{"title"},
		Apply: func(a *domain.Article, p domain.Patch) {
			if v, ok := p["title"].(string); ok {
				a.Title = v
			}
			if v, ok := p["content"].(string); ok {
				a.Content = v
			}
			if v, ok := p["author"].(string); ok {
				a.Author = v
			}
		},
	})
}

// NewMemoryUserStore builds an in-memory user store.
func NewMemoryUserStore() *MemoryStore[domain.User, *domain.User] {
	return NewMemoryStore[domain.User, *domain.User](MemoryConfig[domain.User]{
		Label:  "User",
		Fields: userFields(),
		Text:   []string{"name", "email"},
		Unique: []string{"email"},
		Apply: func(u *domain.User, p domain.Patch) {
			if v, ok := p["email"].(string); ok {
				u.Email = v
			}
			if v, ok := p["name"].(string); ok {
				u.Name = v
			}
			if v, ok := p["role"].(string); ok {
				u.Role = domain.Role(v)
			}
		},
	})
}

// NewMemoryCommentStore builds an in-memory comment store.
func NewMemoryCommentStore() *MemoryStore[domain.Comment, *domain.Comment] {
	return NewMemoryStore[domain.Comment, *domain.Comment](MemoryConfig[domain.Comment]{
		Label:  "Comment",
		Fields: commentFields(),
		Text:   []string{"content"},
		Apply: func(c *domain.Comment, p domain.Patch) {
			if v, ok := p["content"].(string); ok {
				c.Content = v
			}
		},
	})
}

// NewMemoryStores bundles in-memory stores for every entity. Used by tests
// and by database-less runs.
func NewMemoryStores() ports.Stores {
	articles := NewMemoryArticleStore()
	return ports.Stores{
		Articles: articles,
		Users:    NewMemoryUserStore(),
		Comments: NewMemoryCommentStore(),
		Health:   articles,
	}
}
