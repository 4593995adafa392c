package handlers

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// ListBlogsHandler handles GET / and GET /blogs requests.
type ListBlogsHandler struct {
	base
}

// NewListBlogsHandler returns a ListBlogsHandler backed by the given services.
func NewListBlogsHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ListBlogsHandler {
	return &ListBlogsHandler{base{svc: svc, errs: errs}}
}

// Execute lists every blog.
//
//	@Summary		List blogs
//	@Description	Returns every blog ordered by id. Also served at /.
//	@Tags			blogs
//	@Produce		json
//	@Success		200	{array}		BlogResponse
//	@Failure		500	{object}	ErrorResponse
//	@Failure		504	{object}	ErrorResponse
//	@Router			/blogs [get]
func (h *ListBlogsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.Blog.List(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	resp := make([]BlogResponse, len(blogs))
	for i, b := range blogs {
		resp[i] = toBlogResponse(b)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
