package models

import (
	"time"

	"github.com/ghuser/blogs/services/blog/domain"
)

// Blog is the single resource served by this application.
type Blog struct {
	ID        int64 // assigned by the store on insert, never reused
	Title     Title
	Body      *string // nil when the blog has no body
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch describes a partial update. A nil Title leaves the title unchanged.
// Body is only applied when SetBody is true; a nil Body then clears it.
type Patch struct {
	Title   *string
	Body    *string
	SetBody bool
}

// NewBlog constructs a Blog that has not yet been stored. Returns a
// *domain.ValidationError when the title is rejected.
func NewBlog(title string, body *string, now time.Time) (*Blog, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{"title": err.Error()})
	}
	return &Blog{
		Title:     t,
		Body:      copyString(body),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply merges p into b and bumps UpdatedAt, even for an empty patch.
// UpdatedAt never moves backwards. On error b is left unchanged.
func (b *Blog) Apply(p Patch, now time.Time) error {
	title := b.Title
	if p.Title != nil {
		t, err := NewTitle(*p.Title)
		if err != nil {
			return domain.NewValidationError(map[string]string{"title": err.Error()})
		}
		title = t
	}

	b.Title = title
	if p.SetBody {
		b.Body = copyString(p.Body)
	}
	if now.Before(b.UpdatedAt) {
		now = b.UpdatedAt
	}
	b.UpdatedAt = now
	return nil
}

// Clone returns a deep copy of b.
func (b *Blog) Clone() *Blog {
	c := *b
	c.Body = copyString(b.Body)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
