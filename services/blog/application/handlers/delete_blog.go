package handlers

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// DeleteBlogHandler handles DELETE /blogs/{id} requests.
type DeleteBlogHandler struct {
	base
}

// NewDeleteBlogHandler returns a DeleteBlogHandler backed by the given services.
func NewDeleteBlogHandler(svc *appsvcs.Services, errs *errhttp.Responder) *DeleteBlogHandler {
	return &DeleteBlogHandler{base{svc: svc, errs: errs}}
}

// Execute deletes a blog.
//
//	@Summary		Delete blog
//	@Tags			blogs
//	@Param			id	path	int	true	"Blog ID"
//	@Success		204
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/blogs/{id} [delete]
func (h *DeleteBlogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Blog.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
