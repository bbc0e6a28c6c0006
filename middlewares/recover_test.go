package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sengiku/studio/internal"
	"github.com/sengiku/studio/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		handler := middlewares.Recover()(func(internal.Context) error {
			panic("boom")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: boom", pe.Error())
	})

	t.Run("passes errors through", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		sentinel := errors.New("handler failed")

		err := middlewares.Recover()(func(internal.Context) error { return sentinel })(ctx)
		require.ErrorIs(t, err, sentinel)
		require.False(t, middlewares.IsPanicError(err))
	})

	t.Run("disable stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(internal.Context) error {
			panic(errors.New("boom"))
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size is capped", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(internal.Context) error {
			panic("boom")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})
}

func TestRecover_ThroughApp(t *testing.T) {
	t.Parallel()

	var handled error
	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(handlerFunc(func(r internal.Router) {
			r.POST("/api/contact", func(internal.Context) error { panic("boom") })
		})),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handled = err
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Unexpected error"})
		}),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Unexpected error"}`, rec.Body.String())
	require.True(t, middlewares.IsPanicError(handled))
}

type handlerFunc func(internal.Router)

func (f handlerFunc) Routes(r internal.Router) { f(r) }
