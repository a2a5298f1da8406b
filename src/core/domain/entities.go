package domain

import (
	"math"
	"strings"
	"time"
)

// Role represents a user's role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleModerator:
		return true
	}
	return false
}

// Article is a published piece of content. Titles are unique.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WordCount returns the number of whitespace-separated words in the content.
func (a Article) WordCount() int {
	return len(strings.Fields(a.Content))
}

// ReadingTime estimates reading time in minutes at 200 words per minute,
// rounded up.
func (a Article) ReadingTime() int {
	words := a.WordCount()
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / 200.0))
}

// User is a registered account. Emails are unique and stored lowercase.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment references an article and the user who wrote it.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implementations let generic stores address records uniformly.

func (a *Article) EntityID() string { return a.ID }
func (u *User) EntityID() string    { return u.ID }
func (c *Comment) EntityID() string { return c.ID }

// SetIdentity assigns the identifier and creation timestamps on insert.

func (a *Article) SetIdentity(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
}

func (u *User) SetIdentity(id string, now time.Time) {
	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
}

func (c *Comment) SetIdentity(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
}

// Touch advances the update timestamp. It is called on every successful
// update, whether or not other fields changed.

func (a *Article) Touch(now time.Time) { a.UpdatedAt = now }
func (u *User) Touch(now time.Time)    { u.UpdatedAt = now }
func (c *Comment) Touch(now time.Time) { c.UpdatedAt = now }
