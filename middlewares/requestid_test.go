package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengiku/studio/internal"
	"github.com/sengiku/studio/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		var seen string
		err := middlewares.RequestID()(func(c internal.Context) error {
			seen = middlewares.GetRequestID(c.Request().Context())
			return nil
		})(ctx)

		require.NoError(t, err)
		_, err = uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("X-Request-ID", "form-attempt-1")
		rec := httptest.NewRecorder()

		var seen string
		err := middlewares.RequestID()(func(c internal.Context) error {
			seen = middlewares.GetRequestID(c)
			return nil
		})(newTestContext(rec, req))

		require.NoError(t, err)
		assert.Equal(t, "form-attempt-1", seen)
		assert.Equal(t, "form-attempt-1", rec.Header().Get("X-Request-ID"))
	})

	t.Run("falls back to correlation header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-9")
		rec := httptest.NewRecorder()

		require.NoError(t, middlewares.RequestID()(func(internal.Context) error { return nil })(newTestContext(rec, req)))
		assert.Equal(t, "corr-9", rec.Header().Get("X-Request-ID"))
	})

	t.Run("oversized header is replaced", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := httptest.NewRecorder()

		gen := func() string { return "generated" }
		require.NoError(t, middlewares.RequestID(middlewares.WithRequestIDGenerator(gen))(func(internal.Context) error { return nil })(newTestContext(rec, req)))
		assert.Equal(t, "generated", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace", "trace-1")
		req.Header.Set("X-Request-ID", "ignored")
		rec := httptest.NewRecorder()

		mw := middlewares.RequestID(middlewares.WithRequestIDHeaders("X-Trace"))
		require.NoError(t, mw(func(internal.Context) error { return nil })(newTestContext(rec, req)))
		assert.Equal(t, "trace-1", rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, middlewares.GetRequestID(context.Background()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extract := middlewares.RequestIDExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	ctx := newTestContext(httptest.NewRecorder(), req)

	var attrValue string
	err := middlewares.RequestID()(func(c internal.Context) error {
		attr, ok := extract(c)
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		attrValue = attr.Value.String()
		return nil
	})(ctx)

	require.NoError(t, err)
	assert.Equal(t, "req-1", attrValue)
}
