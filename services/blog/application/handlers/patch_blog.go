package handlers

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	pkgvalidator "github.com/ghuser/blogs/pkg/validator"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// UpdateBlogHandler handles PATCH and PUT /blogs/{id} requests.
type UpdateBlogHandler struct {
	base
}

// NewUpdateBlogHandler returns an UpdateBlogHandler backed by the given services.
func NewUpdateBlogHandler(svc *appsvcs.Services, errs *errhttp.Responder) *UpdateBlogHandler {
	return &UpdateBlogHandler{base{svc: svc, errs: errs}}
}

// Execute partially updates a blog. PUT is accepted with the same semantics.
//
//	@Summary		Update blog
//	@Description	Omitted fields are unchanged; "body": null clears the body. updated_at is always bumped.
//	@Tags			blogs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Blog ID"
//	@Param			request	body		UpdateBlogRequest	true	"Fields to change"
//	@Success		200		{object}	BlogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/blogs/{id} [patch]
//	@Router			/blogs/{id} [put]
func (h *UpdateBlogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.DecodeRequest[UpdateBlogRequest](w, r)
	if !ok {
		return
	}

	blog, err := h.svc.Blog.Update(r.Context(), id, req.Patch())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBlogResponse(blog))
}
