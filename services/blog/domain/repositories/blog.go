package repositories

import (
	"context"

	"github.com/ghuser/blogs/services/blog/domain/models"
)

// BlogRepository is the persistence interface for the Blog resource.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations return domain.ErrBlogNotFound for missing ids and must be
// safe for concurrent use. Calls on the same id are serialized; calls on
// different ids do not block each other.
type BlogRepository interface {
	// Insert stores a new blog and assigns blog.ID. Ids are unique and
	// increase monotonically.
	Insert(ctx context.Context, blog *models.Blog) error

	Get(ctx context.Context, id int64) (*models.Blog, error)

	// List returns every blog ordered by id ascending.
	List(ctx context.Context) ([]*models.Blog, error)

	// Update loads the blog, applies mutate while holding the record and
	// persists the result. Nothing is written when mutate returns an error.
	Update(ctx context.Context, id int64, mutate func(*models.Blog) error) (*models.Blog, error)

	Delete(ctx context.Context, id int64) error
}
