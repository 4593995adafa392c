package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blogs/pkg/errhttp"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
	blogdomain "github.com/ghuser/blogs/services/blog/domain"
)

// base carries what every blog handler needs.
type base struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// blogID parses the {id} path parameter. Ids that are not positive integers
// cannot name a blog and are answered with 404.
func (b base) blogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		b.errs.WriteError(w, r, blogdomain.ErrBlogNotFound)
		return 0, false
	}
	return id, true
}
