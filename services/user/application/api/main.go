package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/services/user/application/handlers"
	appsvcs "github.com/ghuser/blogs/services/user/application/services"
)

// UserRoutes registers the account routes on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewSignUpHandler(svcs, a.SessionStore, a.Errors).Execute)
		r.Post("/sign_in", handlers.NewSignInHandler(svcs, a.SessionStore, a.Errors).Execute)
		r.Delete("/sign_out", handlers.NewSignOutHandler(a.SessionStore, a.Errors).Execute)
	})
}
