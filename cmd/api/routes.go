package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/blogs/docs/swagger"
	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/pkg/httpx"
	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/mail"
	"github.com/ghuser/blogs/pkg/telemetry"
	blogApi "github.com/ghuser/blogs/services/blog/application/api"
	userApi "github.com/ghuser/blogs/services/user/application/api"
)

// newHandler builds the full HTTP surface. metrics and outbox are optional;
// /letter_opener only exists when outbox is non-nil.
func newHandler(a *app.Application, checks httpx.HealthChecks, metrics http.Handler, outbox *mail.Outbox) http.Handler {
	cfg := a.Config
	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(a.Logger),
		logger.Recovery(a.Logger),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(checks))
	if metrics != nil {
		r.Get("/metrics", metrics.ServeHTTP)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if outbox != nil {
		mail.PreviewRoutes(r, outbox, a.Logger)
	}
	registerRoutes(r, a)
	return r
}

// registerRoutes mounts all service routes.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	userApi.UserRoutes(r, a)
	blogApi.BlogRoutes(r, a)
}
