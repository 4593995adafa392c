package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/errhttp"
	appsvcs "github.com/ghuser/blogs/services/user/application/services"
	"github.com/ghuser/blogs/services/user/domain/models"
)

// base carries what every user handler needs.
type base struct {
	svc   *appsvcs.Services
	store sessions.Store
	errs  *errhttp.Responder
}

func (b base) startSession(w http.ResponseWriter, r *http.Request, u *models.User) error {
	return auth.SignIn(w, r, b.store, auth.Identity{UserID: u.ID, Email: u.Email.String()})
}
