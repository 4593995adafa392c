package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/blogs/pkg/database"
	blogdomain "github.com/ghuser/blogs/services/blog/domain"
	"github.com/ghuser/blogs/services/blog/domain/models"
	"github.com/ghuser/blogs/services/blog/domain/repositories"
	"github.com/ghuser/blogs/services/blog/infrastructure/persistence/postgres/db"
)

var _ repositories.BlogRepository = (*BlogRepository)(nil)

// BlogRepository implements repositories.BlogRepository against PostgreSQL.
// Every call goes through database.Database, so it is bounded by the store
// timeout and guarded by the circuit breaker.
type BlogRepository struct {
	db *database.Database
}

// NewBlogRepository returns a BlogRepository backed by the given database.
func NewBlogRepository(database *database.Database) *BlogRepository {
	return &BlogRepository{db: database}
}

// Insert persists a new blog and assigns its BIGSERIAL id.
func (r *BlogRepository) Insert(ctx context.Context, blog *models.Blog) error {
	return r.db.Do(ctx, func(ctx context.Context) error {
		id, err := db.New(r.db.DB()).InsertBlog(ctx, db.InsertBlogParams{
			Title:     blog.Title.String(),
			Body:      toNullString(blog.Body),
			CreatedAt: blog.CreatedAt,
			UpdatedAt: blog.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert blog: %w", err)
		}
		blog.ID = id
		return nil
	})
}

// Get retrieves a blog by id. Returns ErrBlogNotFound if not found.
func (r *BlogRepository) Get(ctx context.Context, id int64) (*models.Blog, error) {
	var blog *models.Blog
	err := r.db.Do(ctx, func(ctx context.Context) error {
		row, err := db.New(r.db.DB()).GetBlog(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return blogdomain.ErrBlogNotFound
			}
			return fmt.Errorf("query blog: %w", err)
		}
		blog = rowToBlog(row)
		return nil
	})
	return blog, err
}

// List returns every blog ordered by id.
func (r *BlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Do(ctx, func(ctx context.Context) error {
		rows, err := db.New(r.db.DB()).ListBlogs(ctx)
		if err != nil {
			return fmt.Errorf("query blogs: %w", err)
		}
		blogs = make([]*models.Blog, len(rows))
		for i, row := range rows {
			blogs[i] = rowToBlog(row)
		}
		return nil
	})
	return blogs, err
}

// Update locks the row with SELECT ... FOR UPDATE, applies mutate and writes
// the result in the same transaction. Concurrent updates and deletes of one
// id are serialized by the row lock.
func (r *BlogRepository) Update(ctx context.Context, id int64, mutate func(*models.Blog) error) (*models.Blog, error) {
	var blog *models.Blog
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetBlogForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return blogdomain.ErrBlogNotFound
			}
			return fmt.Errorf("lock blog: %w", err)
		}

		b := rowToBlog(row)
		if err := mutate(b); err != nil {
			return err
		}

		if err := q.UpdateBlog(ctx, db.UpdateBlogParams{
			ID:        b.ID,
			Title:     b.Title.String(),
			Body:      toNullString(b.Body),
			UpdatedAt: b.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("update blog: %w", err)
		}
		blog = b
		return nil
	})
	return blog, err
}

// Delete removes a blog by id. Returns ErrBlogNotFound when no row was removed.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	return r.db.Do(ctx, func(ctx context.Context) error {
		n, err := db.New(r.db.DB()).DeleteBlog(ctx, id)
		if err != nil {
			return fmt.Errorf("delete blog: %w", err)
		}
		if n == 0 {
			return blogdomain.ErrBlogNotFound
		}
		return nil
	})
}

// rowToBlog maps a db.Blog to a domain models.Blog.
func rowToBlog(row db.Blog) *models.Blog {
	var body *string
	if row.Body.Valid {
		s := row.Body.String
		body = &s
	}
	return &models.Blog{
		ID:        row.ID,
		Title:     models.Title(row.Title),
		Body:      body,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
