// Package internal provides the core types behind the studio application framework.
//
// Import "github.com/sengiku/studio" instead; it re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, global middleware, health probes, and the server lifecycle
//   - Context: request/response access plus JSON/text helpers and request-scoped logging
//   - Router: interface handlers use to declare routes
//   - Handler: types that declare routes on a Router
//   - HandlerFunc: route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so handlers pass it directly to outbound calls:
//
//	func (h *ContactHandler) submit(c studio.Context) error {
//	    body, err := io.ReadAll(c.Request().Body)
//	    if err != nil {
//	        return err
//	    }
//	    res, err := h.relay.HandleSubmission(c, body)
//	    ...
//	}
//
// # Error Handling
//
// Handlers return errors instead of writing error responses. The App passes the
// error to its ErrorHandler unless the handler already wrote a response.
package internal
