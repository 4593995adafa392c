package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	pkgvalidator "github.com/ghuser/blogs/pkg/validator"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// CreateBlogHandler handles POST /blogs requests.
type CreateBlogHandler struct {
	base
}

// NewCreateBlogHandler returns a CreateBlogHandler backed by the given services.
func NewCreateBlogHandler(svc *appsvcs.Services, errs *errhttp.Responder) *CreateBlogHandler {
	return &CreateBlogHandler{base{svc: svc, errs: errs}}
}

// Execute creates a new blog.
//
//	@Summary		Create blog
//	@Tags			blogs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateBlogRequest	true	"Blog fields"
//	@Success		201		{object}	BlogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/blogs [post]
func (h *CreateBlogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[CreateBlogRequest](w, r)
	if !ok {
		return
	}

	blog, err := h.svc.Blog.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/blogs/"+strconv.FormatInt(blog.ID, 10))
	httpx.JSON(w, http.StatusCreated, toBlogResponse(blog))
}
