package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	pkgvalidator "github.com/ghuser/blogs/pkg/validator"
	appsvcs "github.com/ghuser/blogs/services/user/application/services"
)

// SignUpHandler handles POST /users requests.
type SignUpHandler struct {
	base
}

// NewSignUpHandler returns a SignUpHandler.
func NewSignUpHandler(svc *appsvcs.Services, store sessions.Store, errs *errhttp.Responder) *SignUpHandler {
	return &SignUpHandler{base{svc: svc, store: store, errs: errs}}
}

// Execute registers a user and signs them in.
//
//	@Summary		Sign up
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignUpRequest	true	"Credentials"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/users [post]
func (h *SignUpHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignUpRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	if err := h.startSession(w, r, user); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(user))
}
