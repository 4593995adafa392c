package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/migrations"
	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/pkg/database"
	"github.com/ghuser/blogs/pkg/errhttp"
	"github.com/ghuser/blogs/pkg/httpx"
	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/mail"
	"github.com/ghuser/blogs/pkg/migrator"
	"github.com/ghuser/blogs/pkg/redisclient"
	"github.com/ghuser/blogs/pkg/telemetry"
	"github.com/ghuser/blogs/services/blog/application/routing"
)

// @title					Blogs API
// @version				1.0
// @description			Blog posts with user accounts and a development mail preview.
// @contact.name			API Support
// @contact.email			support@blogs.local
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	checks := httpx.HealthChecks{}

	var db *database.Database
	if cfg.StoreDriver == config.StorePostgres {
		db, err = database.NewPool(ctx, cfg.DatabaseURL, database.Options{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnLifetime,
			Timeout:         cfg.StoreTimeout,
			BreakerFailures: cfg.BreakerFailures,
			BreakerCooldown: database.DefaultOptions().BreakerCooldown,
		}, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer db.Close()
		checks["database"] = db
		log.Info("database pool connected")

		if cfg.MigrateOnStart {
			if err := migrator.Up(ctx, db.DB(), migrations.FS); err != nil {
				log.Error("failed to run migrations", "error", err)
				os.Exit(1) //nolint:gocritic
			}
			log.Info("migrations applied")
		}
	} else {
		log.Warn("using in-memory store, records are lost on restart")
	}

	var (
		redisClient  *redisclient.Client
		sessionStore sessions.Store
	)
	if cfg.AuthEnabled {
		redisClient, err = redisclient.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		checks["redis"] = redisClient
		log.Info("redis connected")

		sessionStore = auth.NewSessionStore(
			redisClient.Redis(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			cfg.IsProduction(),
		)
		log.Info("session store initialized", "backend", "redis")
	} else {
		sessionStore = sessions.NewCookieStore([]byte(cfg.SessionAuthKey), []byte(cfg.SessionEncryptionKey))
		log.Warn("authentication disabled, every action is open")
	}

	var (
		mailer mail.Mailer
		outbox *mail.Outbox
	)
	if cfg.MailPreviewEnabled {
		outbox = mail.NewOutbox(cfg.MailFrom, mail.DefaultOutboxSize)
		mailer = outbox
		log.Info("mail preview enabled", "path", "/letter_opener")
	} else {
		mailer = mail.NewLogMailer(cfg.MailFrom, log)
	}

	appConfig := &app.Application{
		Config:       cfg,
		Db:           db,
		Redis:        redisClient,
		SessionStore: sessionStore,
		Logger:       log,
		Gate:         auth.NewSessionGate(sessionStore, auth.Policy{Public: routing.PublicActions}, cfg.AuthEnabled, log),
		Errors:       errhttp.NewResponder(log, cfg.IsProduction()),
		Mailer:       mailer,
	}

	srv := httpx.NewServer(cfg.HTTPAddr, newHandler(appConfig, checks, metricsHandler, outbox))

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
