package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sengiku/studio"
	"github.com/sengiku/studio/pkg/contact"
)

// DefaultMaxBodySize bounds the contact request body.
const DefaultMaxBodySize int64 = 1 << 20

// Relay relays one contact submission.
type Relay interface {
	HandleSubmission(ctx context.Context, raw []byte) (*contact.Result, error)
}

// Contact serves POST /api/contact.
// Implements studio.Handler interface.
type Contact struct {
	relay       Relay
	middlewares []studio.Middleware
	maxBodySize int64
}

// ContactOption configures the Contact handler.
type ContactOption func(*Contact)

// WithAPIMiddleware adds middleware scoped to /api, e.g. CORS.
func WithAPIMiddleware(mw ...studio.Middleware) ContactOption {
	return func(h *Contact) {
		h.middlewares = append(h.middlewares, mw...)
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) ContactOption {
	return func(h *Contact) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// NewContact creates the contact endpoint handler.
func NewContact(relay Relay, opts ...ContactOption) *Contact {
	h := &Contact{
		relay:       relay,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes declares the contact API.
func (h *Contact) Routes(r studio.Router) {
	r.Route("/api", func(r studio.Router) {
		r.Use(h.middlewares...)
		r.POST("/contact", h.submit)
	})
}

// submit relays the request body. The relay decides the status; see ErrorHandler.
func (h *Contact) submit(c studio.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.LogWarn("contact body too large", "limit", tooLarge.Limit)
		}
		return studio.NewHTTPError(http.StatusInternalServerError, contact.MsgUnexpected, studio.WithError(err))
	}

	res, err := h.relay.HandleSubmission(c, body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
