package handlers

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/httpx"
)

// newBlogForm is the descriptor returned by the new action.
var newBlogForm = BlogFormResponse{
	Method: http.MethodPost,
	Action: "/blogs",
	Fields: []FormField{
		{Name: "title", Type: "string", Required: true, MaxLength: 255},
		{Name: "body", Type: "text"},
	},
}

// NewBlogFormHandler handles GET /blogs/new requests.
type NewBlogFormHandler struct{}

// NewNewBlogFormHandler returns a NewBlogFormHandler.
func NewNewBlogFormHandler() *NewBlogFormHandler {
	return &NewBlogFormHandler{}
}

// Execute describes the empty blog form. It never touches the store.
//
//	@Summary		New blog form
//	@Tags			blogs
//	@Produce		json
//	@Success		200	{object}	BlogFormResponse
//	@Failure		403	{object}	ErrorResponse
//	@Router			/blogs/new [get]
func (h *NewBlogFormHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, newBlogForm)
}
