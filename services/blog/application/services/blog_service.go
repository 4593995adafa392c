package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/services/blog/domain/models"
	"github.com/ghuser/blogs/services/blog/domain/repositories"
	domainsvcs "github.com/ghuser/blogs/services/blog/domain/services"
)

// BlogService orchestrates the blog actions on top of the repository.
// Only Create, Update and Delete change stored state.
type BlogService struct {
	repo      repositories.BlogRepository
	log       logger.Logger
	mutations metric.Int64Counter
	now       func() time.Time
}

// NewBlogService returns a BlogService wired with the given repository.
// Mutations are counted on meter as blogs.mutations{action}.
func NewBlogService(repo repositories.BlogRepository, log logger.Logger, meter metric.Meter) *BlogService {
	counter, err := meter.Int64Counter("blogs.mutations",
		metric.WithDescription("Blog records created, updated or deleted"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		log.Warn("blog mutation counter unavailable", "error", err)
	}
	return &BlogService{
		repo:      repo,
		log:       log,
		mutations: counter,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// List returns every blog ordered by id.
func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

// Get returns one blog. Returns ErrBlogNotFound if it does not exist.
func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog %d: %w", id, err)
	}
	return blog, nil
}

// Create validates and persists a new blog. Nothing is stored when the
// fields are rejected.
func (s *BlogService) Create(ctx context.Context, title string, body *string) (*models.Blog, error) {
	blog, err := models.NewBlog(title, body, s.now())
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	if err := domainsvcs.ValidateBlogForSave(blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	if err := s.repo.Insert(ctx, blog); err != nil {
		return nil, fmt.Errorf("save blog: %w", err)
	}

	s.recordMutation(ctx, "create")
	s.log.InfoContext(ctx, "blog created", "blog_id", blog.ID, "actor", actor(ctx))
	return blog, nil
}

// Update applies patch to the blog and always bumps UpdatedAt, so an empty
// patch only touches the timestamp.
func (s *BlogService) Update(ctx context.Context, id int64, patch models.Patch) (*models.Blog, error) {
	blog, err := s.repo.Update(ctx, id, func(b *models.Blog) error {
		if err := b.Apply(patch, s.now()); err != nil {
			return err
		}
		return domainsvcs.ValidateBlogForSave(b)
	})
	if err != nil {
		return nil, fmt.Errorf("update blog %d: %w", id, err)
	}

	s.recordMutation(ctx, "update")
	s.log.InfoContext(ctx, "blog updated", "blog_id", id, "actor", actor(ctx))
	return blog, nil
}

// Delete removes a blog. Returns ErrBlogNotFound if it does not exist,
// including when it was already deleted.
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}

	s.recordMutation(ctx, "destroy")
	s.log.InfoContext(ctx, "blog deleted", "blog_id", id, "actor", actor(ctx))
	return nil
}

// actor names the signed-in user behind ctx for mutation logs. With the gate
// disabled mutations arrive without an identity and are logged as anonymous.
func actor(ctx context.Context) string {
	id, err := auth.IdentityFromCtx(ctx)
	if errors.Is(err, auth.ErrUnauthenticated) {
		return "anonymous"
	}
	return id.UserID.String()
}

func (s *BlogService) recordMutation(ctx context.Context, action string) {
	if s.mutations == nil {
		return
	}
	s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}
