package handlers

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// ShowBlogHandler handles GET /blogs/{id} and GET /blogs/{id}/edit requests.
// The edit action returns the same record as show.
type ShowBlogHandler struct {
	base
}

// NewShowBlogHandler returns a ShowBlogHandler backed by the given services.
func NewShowBlogHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ShowBlogHandler {
	return &ShowBlogHandler{base{svc: svc, errs: errs}}
}

// Execute returns one blog.
//
//	@Summary		Show blog
//	@Tags			blogs
//	@Produce		json
//	@Param			id	path		int	true	"Blog ID"
//	@Success		200	{object}	BlogResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/blogs/{id} [get]
func (h *ShowBlogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	blog, err := h.svc.Blog.Get(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBlogResponse(blog))
}

// ExecuteEdit returns the blog being edited.
//
//	@Summary		Edit blog
//	@Description	Returns the current record to prefill an edit form.
//	@Tags			blogs
//	@Produce		json
//	@Param			id	path		int	true	"Blog ID"
//	@Success		200	{object}	BlogResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/blogs/{id}/edit [get]
func (h *ShowBlogHandler) ExecuteEdit(w http.ResponseWriter, r *http.Request) {
	h.Execute(w, r)
}
