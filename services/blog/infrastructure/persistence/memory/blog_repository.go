// Package memory provides a process-local BlogRepository for development and
// tests. Records do not survive a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ghuser/blogs/pkg/database"
	blogdomain "github.com/ghuser/blogs/services/blog/domain"
	"github.com/ghuser/blogs/services/blog/domain/models"
	"github.com/ghuser/blogs/services/blog/domain/repositories"
)

var _ repositories.BlogRepository = (*BlogRepository)(nil)

// record pairs a stored blog with the lock that serializes writers on its id.
// The blog pointer is replaced, never mutated, so readers only need mu.
type record struct {
	lock    chan struct{}
	blog    *models.Blog
	deleted bool // guarded by lock
}

func (rec *record) acquire(ctx context.Context) error {
	select {
	case rec.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", database.ErrTimeout, ctx.Err())
	}
}

func (rec *record) release() {
	<-rec.lock
}

// BlogRepository implements repositories.BlogRepository in memory.
type BlogRepository struct {
	timeout time.Duration

	mu      sync.RWMutex
	lastID  int64
	records map[int64]*record
}

// NewBlogRepository returns an empty repository. timeout bounds how long a
// call may wait for a record held by another writer.
func NewBlogRepository(timeout time.Duration) *BlogRepository {
	if timeout <= 0 {
		timeout = database.DefaultOptions().Timeout
	}
	return &BlogRepository{
		timeout: timeout,
		records: make(map[int64]*record),
	}
}

// Insert stores a copy of blog and assigns the next id.
func (r *BlogRepository) Insert(ctx context.Context, blog *models.Blog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", database.ErrTimeout, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	blog.ID = r.lastID
	r.records[blog.ID] = &record{
		lock: make(chan struct{}, 1),
		blog: blog.Clone(),
	}
	return nil
}

// Get returns a copy of the stored blog.
func (r *BlogRepository) Get(ctx context.Context, id int64) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", database.ErrTimeout, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, blogdomain.ErrBlogNotFound
	}
	return rec.blog.Clone(), nil
}

// List returns copies of every stored blog ordered by id.
func (r *BlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", database.ErrTimeout, err)
	}

	r.mu.RLock()
	blogs := make([]*models.Blog, 0, len(r.records))
	for _, rec := range r.records {
		blogs = append(blogs, rec.blog.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })
	return blogs, nil
}

// Update holds the record lock while mutate runs on a copy, then publishes
// the copy. Nothing is stored when mutate fails.
func (r *BlogRepository) Update(ctx context.Context, id int64, mutate func(*models.Blog) error) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rec, err := r.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rec.release()

	r.mu.RLock()
	blog := rec.blog.Clone()
	r.mu.RUnlock()

	if err := mutate(blog); err != nil {
		return nil, err
	}

	r.mu.Lock()
	rec.blog = blog
	r.mu.Unlock()
	return blog.Clone(), nil
}

// Delete removes the blog. A second delete of the same id reports
// ErrBlogNotFound.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rec, err := r.lock(ctx, id)
	if err != nil {
		return err
	}
	defer rec.release()

	rec.deleted = true
	r.mu.Lock()
	delete(r.records, id)
	r.mu.Unlock()
	return nil
}

// lock finds the record for id and acquires its writer lock. A record deleted
// while the caller waited is reported as not found.
func (r *BlogRepository) lock(ctx context.Context, id int64) (*record, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return nil, blogdomain.ErrBlogNotFound
	}

	if err := rec.acquire(ctx); err != nil {
		return nil, err
	}
	if rec.deleted {
		rec.release()
		return nil, blogdomain.ErrBlogNotFound
	}
	return rec, nil
}
