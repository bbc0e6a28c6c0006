package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    relay *contact.Relay
//	}
//
//	func (h *ContactHandler) Routes(r studio.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the error to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func NoStore(next studio.HandlerFunc) studio.HandlerFunc {
//	    return func(c studio.Context) error {
//	        c.SetHeader("Cache-Control", "no-store")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
