package auth

import (
	"net/http"

	"github.com/ghuser/blogs/pkg/httpx"
	"github.com/ghuser/blogs/pkg/logger"
)

// Guard is a chi middleware that runs the Gate for action before the handler.
// The authenticated identity is injected into the request context. A denied
// request is answered with 403 Forbidden and never reaches next.
//
// After this middleware, handlers can call auth.IdentityFromCtx(r.Context()).
func Guard(g Gate, action string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := g.Authenticate(r)
			if !g.Authorize(id, action) {
				log.InfoContext(r.Context(), "action denied",
					"action", action,
					"authenticated", id.IsAuthenticated(),
				)
				httpx.JSONError(w, http.StatusForbidden, ErrForbidden.Error())
				return
			}

			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
