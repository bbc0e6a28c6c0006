// Package studio is the HTTP layer of the sengiku studio site backend.
//
// It is a thin layer over chi: handlers return errors, middleware wraps
// handlers, and a single error handler turns errors into responses. The
// server's only dynamic endpoint is the contact relay (POST /api/contact),
// next to static SEO documents and health probes.
//
// # Quick Start
//
//	app := studio.New(
//	    studio.WithCustomLogger(log),
//	    studio.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    studio.WithErrorHandler(handlers.ErrorHandler),
//	    studio.WithHandlers(handlers.NewContact(relay), seo),
//	    studio.WithHealthChecks(studio.WithReadinessCheck("mailer", relay.Healthcheck())),
//	)
//
//	if err := app.Run(cfg.App.Address, studio.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *Contact) Routes(r studio.Router) {
//	    r.Route("/api", func(r studio.Router) {
//	        r.Use(h.apiMiddleware...)
//	        r.POST("/contact", h.submit)
//	    })
//	}
//
// A handler returns nil after writing a response, or an error for the error
// handler to render. Errors carrying a status use [HTTPError].
//
// # Middleware
//
// [Middleware] wraps a [HandlerFunc]. Global middleware runs for every route,
// including the not-found and method-not-allowed handlers; route groups add
// their own with Router.Use.
//
// # Lifecycle
//
// [App.Run] binds the address, runs startup hooks, serves until SIGINT, SIGTERM
// or the base context is cancelled, then drains in-flight requests and runs
// shutdown hooks within [ShutdownTimeout].
package studio
