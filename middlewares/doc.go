// Package middlewares provides HTTP middleware for the studio server.
//
// # Request ID
//
// RequestID reuses the X-Request-ID sent by the contact form or generates a UUID.
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	app := studio.New(
//	    studio.WithLogger("studio", middlewares.RequestIDExtractor()),
//	    studio.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError for the app's ErrorHandler, which
// renders them as a generic 500.
//
// # Secure headers
//
// SecureHeaders sets nosniff, frame denial, referrer and permissions policies
// and a strict Content-Security-Policy on every response. Development mode
// relaxes connect-src for local websockets.
//
// # CORS
//
// CORS answers preflights and tags cross-origin responses. Register it inside
// a Route so preflights for paths without an OPTIONS handler still reach it:
//
//	r.Route("/api", func(r studio.Router) {
//	    r.Use(middlewares.CORS(middlewares.WithAllowOrigins(origins...)))
//	    r.POST("/contact", h.submit)
//	})
package middlewares
