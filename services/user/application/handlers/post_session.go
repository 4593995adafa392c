package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	pkgvalidator "github.com/ghuser/blogs/pkg/validator"
	appsvcs "github.com/ghuser/blogs/services/user/application/services"
)

// SignInHandler handles POST /users/sign_in requests.
type SignInHandler struct {
	base
}

// NewSignInHandler returns a SignInHandler.
func NewSignInHandler(svc *appsvcs.Services, store sessions.Store, errs *errhttp.Responder) *SignInHandler {
	return &SignInHandler{base{svc: svc, store: store, errs: errs}}
}

// Execute checks the credentials and starts a session.
//
//	@Summary		Sign in
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignInRequest	true	"Credentials"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/users/sign_in [post]
func (h *SignInHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignInRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	if err := h.startSession(w, r, user); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
