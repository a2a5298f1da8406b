package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
	"pressroom/src/infra/db"
)

// uniqueConstraints maps Postgres constraint names to the wire field they
// protect, so a 23505 can name the offending field in the error details.
var uniqueConstraints = map[string]string{
	"articles_title_key": "title",
	"users_email_key":    "email",
}

func isUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if field, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return field, true
		}
		return "", true
	}
	return "", false
}

// validID reports whether id can possibly address a row. Malformed ids
// resolve to absent without touching the database.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// pinsInvalidID reports whether the filter holds an equality condition on a
// uuid-typed field whose value cannot be a uuid. Such a filter matches
// nothing by construction; running it against Postgres would raise 22P02.
func pinsInvalidID(filter domain.Filter, fields ...string) bool {
	for _, c := range filter.Conditions {
		if c.Op != domain.OpEquals {
			continue
		}
		for _, f := range fields {
			if c.Field == f && !validID(c.Value) {
				return true
			}
		}
	}
	return false
}

// emptyPage builds the zero-result page for the normalized request.
func emptyPage[E any](page domain.PageRequest) *ports.Page[E] {
	req := page.Normalize()
	return &ports.Page[E]{Meta: domain.NewPageMeta(req.Page, req.Limit, 0)}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// queryClauses compiles a domain filter into WHERE/ORDER BY fragments.
// cols whitelists the filterable and sortable fields; text lists the
// columns matched by Filter.Query.
func queryClauses(filter domain.Filter, cols map[string]string, text []string) (where, order string, args []any) {
	var conds []string

	if filter.Query != "" {
		var ors []string
		args = append(args, filter.Query)
		for _, col := range text {
			ors = append(ors, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
		}
		if len(ors) > 0 {
			conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		}
	}

	for _, c := range filter.Conditions {
		col, ok := cols[c.Field]
		if !ok {
			continue
		}
		switch c.Op {
		case domain.OpEquals:
			args = append(args, c.Value)
			conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
		case domain.OpContains:
			args = append(args, c.Value)
			conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
		case domain.OpRange:
			if c.From != nil {
				args = append(args, *c.From)
				conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))
			}
			if c.To != nil {
				args = append(args, *c.To)
				conds = append(conds, fmt.Sprintf("%s <= $%d", col, len(args)))
			}
		}
	}

	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	order = " ORDER BY created_at DESC"
	if col, ok := cols[filter.SortBy]; ok && filter.SortBy != "" {
		dir := "ASC"
		if filter.SortOrder == domain.SortDesc {
			dir = "DESC"
		}
		order = fmt.Sprintf(" ORDER BY %s %s", col, dir)
	}
	return where, order, args
}

// setClauses compiles a patch into a SET fragment. updated_at is always
// refreshed; unknown patch fields are ignored.
func setClauses(patch domain.Patch, cols map[string]string, now time.Time) (string, []any) {
	args := []any{now}
	sets := []string{"updated_at = $1"}
	fields := make([]string, 0, len(patch))
	for field := range patch {
		if _, ok := cols[field]; ok {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	for _, field := range fields {
		args = append(args, patch[field])
		sets = append(sets, fmt.Sprintf("%s = $%d", cols[field], len(args)))
	}
	return strings.Join(sets, ", "), args
}

// listPage runs the shared count + select + scan sequence for a List call.
func listPage[E any](ctx context.Context, pool *pgxpool.Pool, base, where, order string, args []any,
	page domain.PageRequest, scan func(rowScanner) (E, error), table string) (*ports.Page[E], error) {

	req := page.Normalize()

	var total int
	countQ := "SELECT COUNT(*) FROM " + table + where
	if err := pool.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, domain.NewSystemFault(err)
	}

	limitArgs := append(args, req.Limit, req.Offset())
	q := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d", base, where, order, len(args)+1, len(args)+2)

	rows, err := pool.Query(ctx, q, limitArgs...)
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	defer rows.Close()

	var data []E
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, domain.NewSystemFault(err)
		}
		data = append(data, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewSystemFault(err)
	}

	return &ports.Page[E]{
		Data: data,
		Meta: domain.NewPageMeta(req.Page, req.Limit, total),
	}, nil
}

// PostgresArticleStore implements the article repository over pgx.
type PostgresArticleStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresArticleStore constructs an article store backed by Postgres.
func NewPostgresArticleStore(pg *db.Postgres, log *slog.Logger) *PostgresArticleStore {
	return &PostgresArticleStore{pool: pg.Pool, log: log}
}

var articleCols = map[string]string{
	"title":     "title",
	"content":   "content",
	"author":    "author",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const articleSelect = "SELECT id, title, content, author, created_at, updated_at FROM articles"

func scanArticle(row rowScanner) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (s *PostgresArticleStore) List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*ports.Page[domain.Article], error) {
	where, order, args := queryClauses(filter, articleCols, []string{"title", "content"})
	return listPage(ctx, s.pool, articleSelect, where, order, args, page, scanArticle, "articles")
}

func (s *PostgresArticleStore) Get(ctx context.Context, id string) (*domain.Article, error) {
	if !validID(id) {
		return nil, nil
	}
	a, err := scanArticle(s.pool.QueryRow(ctx, articleSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &a, nil
}

func (s *PostgresArticleStore) Create(ctx context.Context, entity domain.Article) (*domain.Article, error) {
	(&entity).SetIdentity(uuid.NewString(), time.Now().UTC())
	const q = `
		INSERT INTO articles (id, title, content, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, q, entity.ID, entity.Title, entity.Content, entity.Author, entity.CreatedAt, entity.UpdatedAt)
	if err != nil {
		if field, ok := isUniqueViolation(err); ok {
			return nil, domain.NewValidation(
				"Article with this title already exists",
				map[string]any{orField(field, "title"): entity.Title},
			)
		}
		return nil, domain.NewSystemFault(err)
	}
	return &entity, nil
}

func (s *PostgresArticleStore) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Article, error) {
	if !validID(id) {
		return nil, nil
	}
	set, args := setClauses(patch, articleCols, time.Now().UTC())
	args = append(args, id)
	q := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d RETURNING id, title, content, author, created_at, updated_at", set, len(args))

	a, err := scanArticle(s.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if field, ok := isUniqueViolation(err); ok {
			return nil, domain.NewValidation(
				"Article with this title already exists",
				map[string]any{orField(field, "title"): patch["title"]},
			)
		}
		return nil, domain.NewSystemFault(err)
	}
	return &a, nil
}

func (s *PostgresArticleStore) Delete(ctx context.Context, id string) (*domain.Article, error) {
	if !validID(id) {
		return nil, nil
	}
	const q = "DELETE FROM articles WHERE id = $1 RETURNING id, title, content, author, created_at, updated_at"
	a, err := scanArticle(s.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &a, nil
}

// PostgresUserStore implements the user repository over pgx.
type PostgresUserStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresUserStore constructs a user store backed by Postgres.
func NewPostgresUserStore(pg *db.Postgres, log *slog.Logger) *PostgresUserStore {
	return &PostgresUserStore{pool: pg.Pool, log: log}
}

var userCols = map[string]string{
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const userSelect = "SELECT id, email, name, role, created_at, updated_at FROM users"

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *PostgresUserStore) List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*ports.Page[domain.User], error) {
	where, order, args := queryClauses(filter, userCols, []string{"name", "email"})
	return listPage(ctx, s.pool, userSelect, where, order, args, page, scanUser, "users")
}

func (s *PostgresUserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	u, err := scanUser(s.pool.QueryRow(ctx, userSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &u, nil
}

func (s *PostgresUserStore) Create(ctx context.Context, entity domain.User) (*domain.User, error) {
	(&entity).SetIdentity(uuid.NewString(), time.Now().UTC())
	const q = `
		INSERT INTO users (id, email, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, q, entity.ID, entity.Email, entity.Name, entity.Role, entity.CreatedAt, entity.UpdatedAt)
	if err != nil {
		if field, ok := isUniqueViolation(err); ok {
			return nil, domain.NewValidation(
				"User with this email already exists",
				map[string]any{orField(field, "email"): entity.Email},
			)
		}
		return nil, domain.NewSystemFault(err)
	}
	return &entity, nil
}

func (s *PostgresUserStore) Update(ctx context.Context, id string, patch domain.Patch) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	set, args := setClauses(patch, userCols, time.Now().UTC())
	args = append(args, id)
	q := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING id, email, name, role, created_at, updated_at", set, len(args))

	u, err := scanUser(s.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if field, ok := isUniqueViolation(err); ok {
			return nil, domain.NewValidation(
				"User with this email already exists",
				map[string]any{orField(field, "email"): patch["email"]},
			)
		}
		return nil, domain.NewSystemFault(err)
	}
	return &u, nil
}

func (s *PostgresUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	const q = "DELETE FROM users WHERE id = $1 RETURNING id, email, name, role, created_at, updated_at"
	u, err := scanUser(s.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &u, nil
}

// PostgresCommentStore implements the comment repository over pgx.
type PostgresCommentStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresCommentStore constructs a comment store backed by Postgres.
func NewPostgresCommentStore(pg *db.Postgres, log *slog.Logger) *PostgresCommentStore {
	return &PostgresCommentStore{pool: pg.Pool, log: log}
}

var commentCols = map[string]string{
	"articleId": "article_id",
	"userId":    "user_id",
	"content":   "content",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const commentSelect = "SELECT id, article_id, user_id, content, created_at, updated_at FROM comments"

func scanComment(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *PostgresCommentStore) List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*ports.Page[domain.Comment], error) {
	if pinsInvalidID(filter, "articleId", "userId") {
		return emptyPage[domain.Comment](page), nil
	}
	where, order, args := queryClauses(filter, commentCols, []string{"content"})
	return listPage(ctx, s.pool, commentSelect, where, order, args, page, scanComment, "comments")
}

func (s *PostgresCommentStore) Get(ctx context.Context, id string) (*domain.Comment, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanComment(s.pool.QueryRow(ctx, commentSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &c, nil
}

func (s *PostgresCommentStore) Create(ctx context.Context, entity domain.Comment) (*domain.Comment, error) {
	(&entity).SetIdentity(uuid.NewString(), time.Now().UTC())
	const q = `
		INSERT INTO comments (id, article_id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, q, entity.ID, entity.ArticleID, entity.UserID, entity.Content, entity.CreatedAt, entity.UpdatedAt)
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &entity, nil
}

func (s *PostgresCommentStore) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Comment, error) {
	if !validID(id) {
		return nil, nil
	}
	set, args := setClauses(patch, commentCols, time.Now().UTC())
	args = append(args, id)
	q := fmt.Sprintf("UPDATE comments SET %s WHERE id = $%d RETURNING id, article_id, user_id, content, created_at, updated_at", set, len(args))

	c, err := scanComment(s.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &c, nil
}

func (s *PostgresCommentStore) Delete(ctx context.Context, id string) (*domain.Comment, error) {
	if !validID(id) {
		return nil, nil
	}
	const q = "DELETE FROM comments WHERE id = $1 RETURNING id, article_id, user_id, content, created_at, updated_at"
	c, err := scanComment(s.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewSystemFault(err)
	}
	return &c, nil
}

// NewPostgresStores bundles Postgres-backed stores for every entity.
func NewPostgresStores(pg *db.Postgres, log *slog.Logger) ports.Stores {
	return ports.Stores{
		Articles: NewPostgresArticleStore(pg, log),
		Users:    NewPostgresUserStore(pg, log),
		Comments: NewPostgresCommentStore(pg, log),
		Health:   pg,
	}
}

// orField falls back to a default field name when the constraint could not
// be mapped.
func orField(field, fallback string) string {
	if field == "" {
		return fallback
	}
	return field
}
