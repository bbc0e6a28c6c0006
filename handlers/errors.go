package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sengiku/studio"
	"github.com/sengiku/studio/middlewares"
	"github.com/sengiku/studio/pkg/contact"
)

// ErrorHandler renders every error returned by a route as JSON.
// Relay failures keep their own status and body; anything unrecognized
// becomes 500 {"error":"Unexpected error"} with the cause logged only.
func ErrorHandler(c studio.Context, err error) error {
	if e, ok := contact.AsError(err); ok {
		return c.JSON(e.StatusCode(), e.Response())
	}

	if he := studio.AsHTTPError(err); he != nil {
		code := he.StatusCode()
		if code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
			return c.JSON(code, contact.ErrorResponse{Error: contact.MsgUnexpected})
		}
		msg := he.Message
		if msg == "" {
			msg = he.StatusText()
		}
		return c.JSON(code, contact.ErrorResponse{Error: msg})
	}

	// Recover has already logged the stack.
	if !middlewares.IsPanicError(err) {
		c.LogError("unhandled error", slog.Any("error", err))
	}
	return c.JSON(http.StatusInternalServerError, contact.ErrorResponse{Error: contact.MsgUnexpected})
}

// NotFound renders 404 as JSON.
func NotFound(c studio.Context) error {
	return c.JSON(http.StatusNotFound, contact.ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
}

// MethodNotAllowed renders 405 as JSON.
func MethodNotAllowed(c studio.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, contact.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
}
