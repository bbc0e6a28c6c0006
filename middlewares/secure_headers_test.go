package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengiku/studio/internal"
	"github.com/sengiku/studio/middlewares"
)

func TestSecureHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, middlewares.SecureHeaders(false)(func(internal.Context) error { return nil })(ctx))

	h := rec.Header()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.Equal(t, "0", h.Get("X-XSS-Protection"))
	assert.Contains(t, h.Get("Permissions-Policy"), "camera=()")
	assert.Contains(t, h.Get("Permissions-Policy"), "fullscreen=(self)")
	assert.Contains(t, h.Get("Content-Security-Policy"), "default-src 'none'")
	assert.Contains(t, h.Get("Content-Security-Policy"), "connect-src 'self';")
}

func TestSecureHeaders_OnErrors(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.SecureHeaders(false)),
		internal.WithHandlers(handlerFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.String(http.StatusOK, "home") })
		})),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
		}),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestContentSecurityPolicy(t *testing.T) {
	t.Parallel()

	prod := middlewares.ContentSecurityPolicy(false)
	assert.NotContains(t, prod, "ws://")
	assert.Contains(t, prod, "frame-ancestors 'none'")
	assert.Contains(t, prod, "font-src 'self' data: https://fonts.gstatic.com")

	dev := middlewares.ContentSecurityPolicy(true)
	assert.Contains(t, dev, "connect-src 'self' ws://localhost:* ws://127.0.0.1:*")
}
