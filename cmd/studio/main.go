// Command studio serves the sengiku studio backend: the contact relay,
// robots.txt, sitemap.xml and health probes.
//
// Configuration comes from the environment and an optional .env file; see
// package config for the full list of variables.
package main

import (
	"context"
	"os"
	"time"

	studio "github.com/sengiku/studio"
	"github.com/sengiku/studio/handlers"
	"github.com/sengiku/studio/middlewares"
	"github.com/sengiku/studio/pkg/config"
	"github.com/sengiku/studio/pkg/contact"
	"github.com/sengiku/studio/pkg/logger"
	"github.com/sengiku/studio/pkg/mailer"
	"github.com/sengiku/studio/pkg/mailer/resend"
)

func main() {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		logger.New().Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Logger, cfg.Sentry, middlewares.RequestIDExtractor()).
		With("component", "studio")

	m := mailer.New(resend.New(cfg.Resend), mailer.WithLogger(log))
	relay := contact.NewRelay(m, cfg.Contact, contact.WithLogger(log))

	seo, err := handlers.NewSEO(cfg.App.SiteURL, time.Now().UTC())
	if err != nil {
		log.Error("failed to build seo documents", "error", err)
		os.Exit(1)
	}

	app := studio.New(
		studio.WithCustomLogger(log),
		studio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.SecureHeaders(cfg.App.IsDev()),
		),
		studio.WithErrorHandler(handlers.ErrorHandler),
		studio.WithNotFoundHandler(handlers.NotFound),
		studio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		studio.WithHandlers(
			handlers.NewContact(relay,
				handlers.WithAPIMiddleware(middlewares.CORS(
					middlewares.WithAllowOrigins(cfg.App.Origins()...),
				)),
			),
			seo,
		),
		studio.WithHealthChecks(
			studio.WithReadinessCheck("mailer", relay.Healthcheck()),
		),
	)

	if cfg.Contact.APIKey == "" {
		log.Warn("RESEND_API_KEY is not set, contact submissions will be rejected")
	}

	if err := app.Run(cfg.App.Address,
		studio.Logger(log),
		studio.ShutdownTimeout(cfg.App.ShutdownTimeout),
		studio.ShutdownHook(logger.FlushSentry),
	); err != nil {
		log.Error("server stopped", "error", err)
		_ = logger.FlushSentry(context.Background())
		os.Exit(1)
	}
}
