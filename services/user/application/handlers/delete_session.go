package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
)

// SignOutHandler handles DELETE /users/sign_out requests.
type SignOutHandler struct {
	store sessions.Store
	errs  *errhttp.Responder
}

// NewSignOutHandler returns a SignOutHandler.
func NewSignOutHandler(store sessions.Store, errs *errhttp.Responder) *SignOutHandler {
	return &SignOutHandler{store: store, errs: errs}
}

// Execute ends the caller's session. Signing out without a session is not an error.
//
//	@Summary		Sign out
//	@Tags			users
//	@Success		204
//	@Router			/users/sign_out [delete]
func (h *SignOutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r, h.store); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
