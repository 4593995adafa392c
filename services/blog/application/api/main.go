package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/services/blog/application/handlers"
	"github.com/ghuser/blogs/services/blog/application/routing"
	appsvcs "github.com/ghuser/blogs/services/blog/application/services"
)

// BlogRoutes registers every entry of the routing table on the provided chi
// router. Each route runs behind the auth gate for its action.
func BlogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	show := handlers.NewShowBlogHandler(svcs, a.Errors)

	actions := map[routing.Action]http.HandlerFunc{
		routing.ActionIndex:   handlers.NewListBlogsHandler(svcs, a.Errors).Execute,
		routing.ActionShow:    show.Execute,
		routing.ActionNew:     handlers.NewNewBlogFormHandler().Execute,
		routing.ActionCreate:  handlers.NewCreateBlogHandler(svcs, a.Errors).Execute,
		routing.ActionEdit:    show.ExecuteEdit,
		routing.ActionUpdate:  handlers.NewUpdateBlogHandler(svcs, a.Errors).Execute,
		routing.ActionDestroy: handlers.NewDeleteBlogHandler(svcs, a.Errors).Execute,
	}

	for _, route := range routing.Routes() {
		h, ok := actions[route.Action]
		if !ok {
			panic(fmt.Sprintf("blog routes: no handler for action %q", route.Action))
		}
		guarded := r.With(auth.Guard(a.Gate, string(route.Action), a.Logger))
		for _, method := range route.Methods {
			guarded.Method(method, routing.ChiPattern(route.Pattern), h)
		}
	}
}
