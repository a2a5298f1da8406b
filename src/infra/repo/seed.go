package repo

import (
	"context"
	"fmt"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// Seed loads demo articles, users, and comments into empty stores. It is a
// no-op when articles already exist, so restarts are safe.
func Seed(ctx context.Context, stores ports.Stores) error {
	existing, err := stores.Articles.List(ctx, domain.Filter{}, domain.PageRequest{Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if existing.Meta.Total > 0 {
		return nil
	}

	articles := []domain.Article{
		{
			Title:   "Getting Started with TypeScript",
			Content: "TypeScript is a powerful programming language that builds on JavaScript by adding static type definitions. Types provide a way to describe the shape of an object, providing better documentation, and allowing the compiler to validate that your code is working correctly.",
			Author:  "John Doe",
		},
		{
			Title:   "Advanced Node.js Patterns",
			Content: "Node.js offers many advanced patterns for building scalable applications. From event-driven architecture to microservices, understanding these patterns is crucial for modern development.",
			Author:  "Jane Smith",
		},
		{
			Title:   "Clean Architecture Principles",
			Content: "Clean Architecture is a software design philosophy that separates the elements of a design into ring levels. The main rule of clean architecture is that code dependencies can only point inward.",
			Author:  "Bob Johnson",
		},
	}

	users := []domain.User{
		{Email: "john@example.com", Name: "John Doe", Role: domain.RoleAdmin},
		{Email: "jane@example.com", Name: "Jane Smith", Role: domain.RoleUser},
	}

	var createdArticles []domain.Article
	for _, a := range articles {
		created, err := stores.Articles.Create(ctx, a)
		if err != nil {
			return fmt.Errorf("seed article %q: %w", a.Title, err)
		}
		createdArticles = append(createdArticles, *created)
	}

	var createdUsers []domain.User
	for _, u := range users {
		created, err := stores.Users.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		createdUsers = append(createdUsers, *created)
	}

	comment := domain.Comment{
		ArticleID: createdArticles[0].ID,
		UserID:    createdUsers[1].ID,
		Content:   "Great article! Very helpful for beginners.",
	}
	if _, err := stores.Comments.Create(ctx, comment); err != nil {
		return fmt.Errorf("seed comment: %w", err)
	}
	return nil
}
