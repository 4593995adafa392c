package handlers

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/ghuser/blogs/services/blog/domain/models"
)

// CreateBlogRequest is the request body for POST /blogs.
type CreateBlogRequest struct {
	Title string  `json:"title" example:"Hello"`
	Body  *string `json:"body"  example:"First post"`
} // @name CreateBlogRequest

// UpdateBlogRequest is the request body for PATCH/PUT /blogs/{id}. Omitted
// fields are left unchanged; "body": null clears the body.
type UpdateBlogRequest struct {
	Title *string        `json:"title" example:"Hello again"`
	Body  OptionalString `json:"body"  swaggertype:"string" example:"Edited post"`
} // @name UpdateBlogRequest

// Patch converts the request into a domain patch.
func (r UpdateBlogRequest) Patch() models.Patch {
	return models.Patch{
		Title:   r.Title,
		Body:    r.Body.Value,
		SetBody: r.Body.Set,
	}
}

// OptionalString distinguishes an absent JSON field (Set false) from an
// explicit null (Set true, Value nil).
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the field is present.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// BlogResponse is the JSON representation of a blog. Body is null when absent.
type BlogResponse struct {
	ID        int64     `json:"id"         example:"1"`
	Title     string    `json:"title"      example:"Hello"`
	Body      *string   `json:"body"       example:"First post"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name BlogResponse

func toBlogResponse(b *models.Blog) BlogResponse {
	return BlogResponse{
		ID:        b.ID,
		Title:     b.Title.String(),
		Body:      b.Body,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FormField describes one input of the blog form.
type FormField struct {
	Name      string `json:"name"                 example:"title"`
	Type      string `json:"type"                 example:"string"`
	Required  bool   `json:"required"             example:"true"`
	MaxLength int    `json:"max_length,omitempty" example:"255"`
} // @name FormField

// BlogFormResponse describes the empty form for creating a blog.
type BlogFormResponse struct {
	Method string      `json:"method" example:"POST"`
	Action string      `json:"action" example:"/blogs"`
	Fields []FormField `json:"fields"`
} // @name BlogFormResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"blog not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when submitted fields are rejected.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse
