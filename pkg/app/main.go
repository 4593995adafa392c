package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/pkg/database"
	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/mail"
	"github.com/ghuser/blogs/pkg/redisclient"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use the context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "blog created", "blog_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database  // nil when STORE_DRIVER=memory
	Redis        *redisclient.Client // nil when AUTH_ENABLED=false
	SessionStore sessions.Store      // Redis-backed; a cookie store when Redis is not used
	Logger       logger.Logger
	Gate         auth.Gate
	Errors       *errhttp.Responder
	Mailer       mail.Mailer
}
